package domain

import "time"

// Session is a point-in-time snapshot of a user's identity taken at login.
// It is not a live reference: the role is never re-validated against the
// directory, and the token is the client's sole credential after login.
type Session struct {
	Token     string    `json:"-"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
