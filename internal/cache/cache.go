// Package cache stores JSON values in Redis for read-mostly lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/config"
)

// ErrMiss is returned by Get when the key holds no value
var ErrMiss = errors.New("cache miss")

// Cache defines the operations used by services
type Cache interface {
	Get(ctx context.Context, key string, value any) error
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// Connect opens a Redis client from cfg and verifies it with a ping
func Connect(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisCache creates a cache whose entries expire after ttl
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) Cache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, key string, value any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(raw, value); err != nil {
		c.logger.Error("Failed to unmarshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return nil
}

func (c *redisCache) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to set cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set cache value: %w", err)
	}
	c.logger.Debug("Cache value saved", zap.String("key", key))
	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Failed to delete cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete cache value: %w", err)
	}
	return nil
}

type noop struct{}

// NewNoop returns a cache that never holds a value
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(context.Context, string, any) error { return ErrMiss }
func (noop) Save(context.Context, string, any) error { return nil }
func (noop) Delete(context.Context, string) error { return nil }
