package ports

import (
	"context"

	"github.com/portalops/user-admin-api/internal/core/domain"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, username, password, email, role string) (*domain.User, error)
	// DeleteUser removes the record and then invalidates every live session of
	// the deleted user. The two steps are independent and non-transactional.
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
