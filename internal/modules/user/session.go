// README: Redis-backed session tokens with a 7-day TTL.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"roamhaven/internal/types"
)

// SessionTTL matches the 7-day cookie lifetime of the web front end.
const SessionTTL = 7 * 24 * time.Hour

// ErrSessionNotFound means the token is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore issues and resolves opaque session tokens.
type SessionStore interface {
	Create(ctx context.Context, userID types.ID) (string, error)
	Get(ctx context.Context, token string) (types.ID, error)
	Delete(ctx context.Context, token string) error
}

// RedisSessions is the production SessionStore.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessions) Create(ctx context.Context, userID types.ID) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), string(userID), SessionTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessions) Get(ctx context.Context, token string) (types.ID, error) {
	v, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return types.ID(v), nil
}

func (s *RedisSessions) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
