package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis as JSON values whose TTL matches the
// session's remaining lifetime.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore wraps a go-redis client. Keys are prefix + token.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}
	if err := s.client.Set(ctx, s.key(session.Token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session: redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}
