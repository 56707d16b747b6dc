package ports

import (
	"context"

	"github.com/portalops/user-admin-api/internal/core/domain"
)

// SessionStore holds the token → session mapping, the only mutable shared
// state in the system. Sessions have no expiry: they live until an explicit
// Destroy, a DestroyAllForUser, or (for the in-memory backend) a restart.
type SessionStore interface {
	// Create mints an unguessable token unique among live tokens and stores a
	// session snapshot stamped with the current time.
	Create(ctx context.Context, username, email, role string) (string, error)
	// Resolve is a pure lookup. It returns domain.ErrNotAuthenticated when the
	// token is unknown.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	// Destroy removes the session if present; an absent token is not an error.
	Destroy(ctx context.Context, token string) error
	// DestroyAllForUser removes every session belonging to username. Used when
	// an admin deletes a user so a still-valid token stops authenticating.
	DestroyAllForUser(ctx context.Context, username string) error
}
