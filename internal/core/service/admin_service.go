package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/portalops/user-admin-api/internal/api/metrics"
	"github.com/portalops/user-admin-api/internal/core/domain"
	"github.com/portalops/user-admin-api/internal/core/ports"
)

// AdminService implements the admin-only directory operations.
type AdminService struct {
	repo     ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAdminService(repo ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, sessions: sessions, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *AdminService) CreateUser(ctx context.Context, username, password, email, role string) (*domain.User, error) {
	user := &domain.User{
		Username:  username,
		Password:  password,
		Email:     email,
		Role:      domain.NormalizeRole(role),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")

	return created, nil
}

// DeleteUser removes the directory record and then invalidates every live
// session of the deleted user. The two steps are not transactional: a crash
// between them can strand a stale session until restart.
func (s *AdminService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.DestroyAllForUser(ctx, deleted.Username); err != nil {
		s.log.Error().Err(err).Str("username", deleted.Username).Msg("session invalidation after delete failed")
	}

	metrics.UsersDeletedTotal.Inc()
	s.log.Info().Str("username", deleted.Username).Str("id", deleted.ID).Msg("user deleted")

	return deleted, nil
}
