// Package cache provides the Redis-backed read-view cache for user
// records. The ledger's in-memory map stays the source of truth; the
// cache only serves read-only state lookups and is invalidated on
// every mutation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"versahook/internal/services/ledger"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss signals that the key is absent; callers fall back to
// the ledger.
var ErrCacheMiss = errors.New("cache miss")

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RecordCache implements ledger.CacheOperator on top of Redis.
type RecordCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecordCache(client *redis.Client, defaultTTL time.Duration) *RecordCache {
	if defaultTTL <= 0 {
		defaultTTL = ledger.CacheDuration
	}
	return &RecordCache{client: client, ttl: defaultTTL}
}

func (c *RecordCache) GetUserRecord(ctx context.Context, userID string) (*ledger.UserRecord, error) {
	data, err := c.client.Get(ctx, userKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached record: %w", err)
	}

	var rec ledger.UserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached record: %w", err)
	}
	return &rec, nil
}

func (c *RecordCache) SetUserRecord(ctx context.Context, record *ledger.UserRecord) error {
	if record == nil {
		return errors.New("cannot cache nil record")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return c.client.Set(ctx, userKey(record.UserID), data, c.ttl).Err()
}

func (c *RecordCache) InvalidateUser(ctx context.Context, userID string) error {
	return c.client.Del(ctx, userKey(userID)).Err()
}

// HealthCheck pings Redis.
func (c *RecordCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache.
func (c *RecordCache) FlushAll(ctx context.Context) error {
	return c.client.FlushAll(ctx).Err()
}

// Stats returns connection pool statistics.
func (c *RecordCache) Stats() *redis.PoolStats {
	return c.client.PoolStats()
}

// Close closes the Redis client connection.
func (c *RecordCache) Close() error {
	return c.client.Close()
}

func userKey(userID string) string {
	return ledger.UserCachePrefix + userID
}
