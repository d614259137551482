// Package cache provides an optional Redis cache for project list reads.
// A nil *ProjectCache is valid and disables caching, so callers never branch
// on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"garden-backend/internal/logger"
)

const (
	listKeyPrefix = "garden:projects:" // garden:projects:{variant}
	listTTL       = 5 * time.Minute
)

// ProjectCache caches serialized project list responses.
type ProjectCache struct {
	client *redis.Client
	log    *logger.Logger
}

// New connects to Redis at the given URL. An empty URL disables caching and
// returns a nil cache.
func New(redisURL string) (*ProjectCache, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewWithClient(redis.NewClient(opts)), nil
}

// NewWithClient wraps an existing Redis client. Used by tests.
func NewWithClient(client *redis.Client) *ProjectCache {
	return &ProjectCache{client: client, log: logger.New()}
}

// Get loads a cached list into dest. Returns false on a miss, on a disabled
// cache, or on any Redis error; cache failures never fail the read path.
func (c *ProjectCache) Get(ctx context.Context, variant string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, c.key(variant)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.WithField("variant", variant).Warnf("cache read failed: %v", err)
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.log.WithField("variant", variant).Warnf("cache entry corrupt: %v", err)
		return false
	}
	return true
}

// Set stores a list response under the variant key.
func (c *ProjectCache) Set(ctx context.Context, variant string, v any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(variant), data, listTTL).Err(); err != nil {
		c.log.WithField("variant", variant).Warnf("cache write failed: %v", err)
	}
}

// Invalidate drops every cached list variant. Called after any write that
// changes what a list read would return.
func (c *ProjectCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, listKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("cache invalidation scan failed: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("cache invalidation failed: %v", err)
	}
}

// Close releases the Redis connection.
func (c *ProjectCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func (c *ProjectCache) key(variant string) string {
	return listKeyPrefix + variant
}
