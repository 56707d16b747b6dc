package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portalops/user-admin-api/internal/core/domain"
)

const keyPrefix = "session:"

// RedisStore is the opt-in persistent backend. It keeps the same contract as
// MemoryStore; sessions still have no TTL and are removed only by Destroy or
// DestroyAllForUser.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, username, email, role string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	sess := domain.Session{
		Token:     token,
		Username:  username,
		Email:     email,
		Role:      domain.NormalizeRole(role),
		LoginTime: time.Now(),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	// SetNX guards the same uniqueness Create promises for the memory backend.
	ok, err := s.client.SetNX(ctx, keyPrefix+token, payload, 0).Result()
	if err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if !ok {
		return s.Create(ctx, username, email, role)
	}

	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	sess.Token = token

	return &sess, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}

func (s *RedisStore) DestroyAllForUser(ctx context.Context, username string) error {
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var sess domain.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			continue
		}
		if sess.Username == username {
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return fmt.Errorf("destroy session %s: %w", key, err)
			}
		}
	}
	return iter.Err()
}
