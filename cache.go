package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// ResponseCache stores serialized query responses. Results depend only on
// the static map and the search options, so a hit is always valid.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// noCache is used when no cache backend is configured
type noCache struct{}

func (noCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noCache) Set(context.Context, string, []byte) error         { return nil }

// RedisCache implements ResponseCache using Redis
type RedisCache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a cache from the cache config section
func NewRedisCache(cfg CacheConfig) *RedisCache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisCacheFromClient(rdb, cfg.Prefix, cfg.TTL)
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client *backend.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read from redis: %w", err)
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write to redis: %w", err)
	}
	return nil
}

// Ping checks connectivity
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// cacheKey identifies a query against a specific map and option set
func cacheKey(grid *Grid, cfg *Config, query string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|", grid.Name(), grid.Rows(), grid.Cols())
	grid.Each(func(_ Position, kind CellKind) {
		fmt.Fprintf(h, "%d,", int(kind))
	})
	fmt.Fprintf(h, "|%s|%g|%d|%s",
		cfg.Search.Mode, cfg.Search.Penalty, cfg.Search.MaxExpansions, cfg.Search.Labels)
	return query + ":" + hex.EncodeToString(h.Sum(nil))
}
