package ports

import (
	"context"

	"github.com/portalops/user-admin-api/internal/core/domain"
)

type AuthService interface {
	// Login validates credentials against the directory and, on success, mints
	// a session. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout destroys the session if the token resolves. It never fails for an
	// absent or unknown token.
	Logout(ctx context.Context, token string) error
}
