package ports

import (
	"context"

	"github.com/portalops/user-admin-api/internal/core/domain"
)

// UserRepository defines the user directory contract. Implementations must
// enforce uniqueness on username and email, surfacing violations as
// domain.ErrUserExists.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// DeleteByID removes a record and returns it, or domain.ErrUserNotFound
	// when no record matched.
	DeleteByID(ctx context.Context, id string) (*domain.User, error)
	// ListAll returns every record ordered by creation time, newest first.
	ListAll(ctx context.Context) ([]domain.User, error)
}
