package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLPermissions = 10 * time.Minute // role/permission sets (change rarely)
	TTLDashboard   = 1 * time.Minute  // dashboard counts
	TTLOptions     = 5 * time.Minute  // select-option reference lists
	TTLDefault     = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixPermissions = "perms:"
	PrefixDashboard   = "dashboard:"
	PrefixOptions     = "options:"
)

// Service is a Redis-backed JSON cache. All operations are nil-safe:
// without a Redis connection reads miss and writes are ignored, so the
// application keeps working against the database.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetPermissions(ctx context.Context, userID string) ([]string, error)
	SetPermissions(ctx context.Context, userID string, perms []string) error
	InvalidatePermissions(ctx context.Context, userID string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service over the given Redis client
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) permissionsKey(userID string) string {
	return PrefixPermissions + userID
}

func (c *redisCache) GetPermissions(ctx context.Context, userID string) ([]string, error) {
	var perms []string
	if err := c.Get(ctx, c.permissionsKey(userID), &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (c *redisCache) SetPermissions(ctx context.Context, userID string, perms []string) error {
	return c.Set(ctx, c.permissionsKey(userID), perms, TTLPermissions)
}

func (c *redisCache) InvalidatePermissions(ctx context.Context, userID string) error {
	return c.Delete(ctx, c.permissionsKey(userID))
}
