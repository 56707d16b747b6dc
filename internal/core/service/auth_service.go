package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/portalops/user-admin-api/internal/api/metrics"
	"github.com/portalops/user-admin-api/internal/core/domain"
	"github.com/portalops/user-admin-api/internal/core/ports"
)

// AuthService implements login and logout against the user directory and the
// session store.
type AuthService struct {
	repo     ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, log: log}
}

// Login looks up the user by email and compares the password by exact
// equality. A missing user and a wrong password are deliberately collapsed
// into the same error so callers cannot enumerate accounts. Passwords are
// stored and compared as plain opaque strings; see DESIGN.md.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Password != password {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	role := domain.NormalizeRole(user.Role)
	token, err := s.sessions.Create(ctx, user.Username, user.Email, role)
	if err != nil {
		return "", nil, err
	}

	session, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", email).Str("role", role).Msg("user logged in")

	return token, session, nil
}

// Logout destroys the session when the token resolves. An absent or unknown
// token is not an error: client-side cleanup must proceed regardless.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return err
	}
	return nil
}
