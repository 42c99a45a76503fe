package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NameCache is a shared second-tier cache, typically Redis.
type NameCache interface {
	// Get reports found=false on a miss; err is reserved for cache failures.
	Get(ctx context.Context, key string) (name string, found bool, err error)
	Set(ctx context.Context, key, name string, ttl time.Duration) error
}

// RedisCache stores names as plain string values under a key prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
}

var _ NameCache = (*RedisCache)(nil)

// RedisOptions configures NewRedisCache.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

func NewRedisCache(opts RedisOptions) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return NewRedisCacheWithClient(client, opts.KeyPrefix)
}

func NewRedisCacheWithClient(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	name, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return name, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key, name string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, name, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity at startup.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
