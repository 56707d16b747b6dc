package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/portalops/user-admin-api/internal/core/domain"
	"github.com/portalops/user-admin-api/internal/infrastructure/session"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by username
	err   error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = "id-" + user.Username
	r.users[created.Username] = created
	return cloneUser(created), nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID: "1", Username: "root", Password: "secret", Email: "root@x.com", Role: "admin",
	})
	store := session.NewMemoryStore()
	svc := NewAuthService(repo, store, zerolog.Nop())

	token, sess, err := svc.Login(context.Background(), "root@x.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if sess.Username != "root" || sess.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}

	// The token must resolve to the same role snapshot.
	resolved, err := store.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve after login: %v", err)
	}
	if resolved.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role snapshot, got %q", resolved.Role)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID: "1", Username: "root", Password: "secret", Email: "root@x.com", Role: "admin",
	})
	svc := NewAuthService(repo, session.NewMemoryStore(), zerolog.Nop())

	_, _, wrongPass := svc.Login(context.Background(), "root@x.com", "nope")
	_, _, noUser := svc.Login(context.Background(), "ghost@x.com", "secret")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), session.NewMemoryStore(), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RoleDefaultsToUser(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID: "2", Username: "legacy", Password: "p", Email: "l@x.com", Role: "",
	})
	svc := NewAuthService(repo, session.NewMemoryStore(), zerolog.Nop())

	_, sess, err := svc.Login(context.Background(), "l@x.com", "p")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Role != domain.RoleUser {
		t.Fatalf("expected defaulted role %q, got %q", domain.RoleUser, sess.Role)
	}
}

func TestAuthService_Login_BackendErrorPropagates(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errors.New("connection refused")
	svc := NewAuthService(repo, session.NewMemoryStore(), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "root@x.com", "secret")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("backend failure must not masquerade as bad credentials")
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID: "1", Username: "root", Password: "secret", Email: "root@x.com", Role: "admin",
	})
	store := session.NewMemoryStore()
	svc := NewAuthService(repo, store, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "root@x.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := store.Resolve(context.Background(), token); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("session survived logout: %v", err)
	}

	// Unknown and empty tokens are fine too.
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-token logout: %v", err)
	}
}
