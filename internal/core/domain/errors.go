package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that login failures never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated is returned when no token is presented or the token
	// does not resolve to a live session. The two cases are indistinguishable.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAdminRequired is returned for a valid session whose role is not admin.
	ErrAdminRequired = errors.New("admin access required")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)
