package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	tverrors "github.com/matzehuels/toolverse/pkg/errors"
)

// RedisCache stores entries in Redis so server replicas share renders.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisKeyPrefix namespaces toolverse keys in a shared Redis.
const RedisKeyPrefix = "toolverse:"

// NewRedisCache connects to the Redis server at url
// (redis://[user:password@]host:port/db).
func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := ParseRedisURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts), prefix: RedisKeyPrefix}, nil
}

// ParseRedisURL validates a Redis URL.
func ParseRedisURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, tverrors.New(tverrors.ErrCodeInvalidConfig, "redis backend requires a redis_url")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeInvalidConfig, err, "invalid redis_url")
	}
	return opts, nil
}

// Ping checks the connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return tverrors.Wrap(tverrors.ErrCodeNetwork, err, "redis unreachable")
	}
	return nil
}

// Get retrieves a value from the cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Delete removes a value from the cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
