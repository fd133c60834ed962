package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on a Redis connection. Records have no TTL;
// the gateway owns their lifecycle.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV creates a KV backed by the Redis instance at addr.
func NewRedisKV(addr string) *RedisKV {
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	return &RedisKV{client: client}
}

// Ping verifies the connection, for health checks.
func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return val, err
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
