package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := NewRedisCacheFromClient(client, "test:", time.Minute)
	t.Cleanup(func() { cache.Close() })
	return cache, mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, mr := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Ping(ctx))

	_, hit, err := cache.Get(ctx, "path:abc")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "path:abc", []byte(`["up"]`)))
	assert.True(t, mr.Exists("test:path:abc"))
	assert.Equal(t, time.Minute, mr.TTL("test:path:abc"))

	val, hit, err := cache.Get(ctx, "path:abc")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `["up"]`, string(val))

	mr.FastForward(2 * time.Minute)
	_, hit, err = cache.Get(ctx, "path:abc")
	require.NoError(t, err)
	assert.False(t, hit, "entry expires after ttl")
}

func TestRedisCacheBackendDown(t *testing.T) {
	cache, mr := newTestRedisCache(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", []byte("v")))
}

func TestCacheKey(t *testing.T) {
	grid := defaultGrid(t)
	cfg := DefaultConfig()

	key := cacheKey(grid, cfg, "path")
	assert.True(t, strings.HasPrefix(key, "path:"))
	assert.Equal(t, key, cacheKey(grid, cfg, "path"))
	assert.NotEqual(t, key, cacheKey(grid, cfg, "trace"))

	plain := DefaultConfig()
	plain.Search.Mode = "plain"
	assert.NotEqual(t, key, cacheKey(grid, plain, "path"))

	other := gridFromRows(t, "C.S")
	assert.NotEqual(t, key, cacheKey(other, cfg, "path"))
}
