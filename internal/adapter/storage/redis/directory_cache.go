package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DirectoryCache implements ports.DirectoryCache using Redis.
type DirectoryCache struct {
	client *goredis.Client
	prefix string
}

// NewDirectoryCache creates a new Redis-backed directory listing cache.
func NewDirectoryCache(client *goredis.Client) *DirectoryCache {
	return &DirectoryCache{
		client: client,
		prefix: "dj:list:",
	}
}

// Get retrieves a cached listing. Returns nil, nil on a miss.
func (c *DirectoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis directory get: %w", err)
	}
	return val, nil
}

// Set stores a listing with TTL.
func (c *DirectoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis directory set: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing.
func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis directory scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis directory invalidate: %w", err)
	}
	return nil
}
