package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/emspanel/internal/config"
)

// RedisBackend stores session regions in Redis. Useful when several
// tools on one machine should share a panel session.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend connects a backend to the configured Redis instance.
func NewRedisBackend(cfg config.SessionConfig) *RedisBackend {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisBackend{client: client, prefix: "emspanel:"}
}

// NewRedisBackendWithClient wraps an existing client (useful for testing).
func NewRedisBackendWithClient(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client, prefix: "emspanel:"}
}

func (b *RedisBackend) key(key string) string {
	return b.prefix + key
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, b.key(key), value, 0).Err()
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, b.key(key)).Err()
}

func (b *RedisBackend) Exists(ctx context.Context, key string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the underlying Redis connection.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
