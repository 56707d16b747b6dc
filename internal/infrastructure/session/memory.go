// Package session provides the token → session mapping behind the
// ports.SessionStore contract. The default backend is an in-process map that
// is never persisted: restarting the process clears every session. A
// Redis-backed alternative exists for deployments that want sessions to
// survive a restart.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/portalops/user-admin-api/internal/api/metrics"
	"github.com/portalops/user-admin-api/internal/core/domain"
)

const tokenBytes = 16

// MemoryStore is the default single-instance session store. Every operation
// is a single map mutation under the lock; there is no TTL and no sweeper.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

// Create mints a 32-hex-char token from crypto/rand and stores the session
// snapshot. The token is regenerated in the (practically unreachable) case it
// collides with a live one.
func (s *MemoryStore) Create(_ context.Context, username, email, role string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var token string
	for {
		t, err := newToken()
		if err != nil {
			return "", err
		}
		if _, live := s.sessions[t]; !live {
			token = t
			break
		}
	}

	s.sessions[token] = domain.Session{
		Token:     token,
		Username:  username,
		Email:     email,
		Role:      domain.NormalizeRole(role),
		LoginTime: time.Now(),
	}
	metrics.SessionsActive.Set(float64(len(s.sessions)))

	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return &sess, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	return nil
}

// DestroyAllForUser scans every entry; at this scale no secondary index is
// warranted.
func (s *MemoryStore) DestroyAllForUser(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if sess.Username == username {
			delete(s.sessions, token)
			metrics.SessionsInvalidatedTotal.Inc()
		}
	}
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
