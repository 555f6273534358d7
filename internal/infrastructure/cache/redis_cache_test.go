package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-insight/internal/infrastructure/cache"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis no disponible: %v", err)
	}
	return client
}

func TestRedisCache_SetGet(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()
	c := cache.NewRedisCache(client, time.Minute)

	_, hit, err := c.Get(ctx, "test:missing")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "test:key", []byte(`{"ok":true}`)))
	val, hit, err := c.Get(ctx, "test:key")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.JSONEq(t, `{"ok":true}`, string(val))

	ttl := client.TTL(ctx, "insight:test:key").Val()
	assert.Greater(t, ttl, time.Duration(0))
	client.Del(ctx, "insight:test:key")
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c cache.Noop
	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}
