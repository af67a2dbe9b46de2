package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisSessionPrefix = "session:"

// RedisSessionStore keeps session bindings in Redis with a TTL, so
// expiry needs no sweeper and sessions survive app restarts.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (r *RedisSessionStore) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := r.client.Set(ctx, redisSessionPrefix+token, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session in Redis: %w", err)
	}
	return token, nil
}

func (r *RedisSessionStore) SessionUserID(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, redisSessionPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to look up session in Redis: %w", err)
	}
	return userID, nil
}

func (r *RedisSessionStore) DeleteSession(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisSessionPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session in Redis: %w", err)
	}
	return nil
}
