package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisCache {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	c := NewRedisCache(client, time.Minute)
	require.NoError(t, c.Ping(context.Background()))
	return c
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()
	id := uuid.NewString()
	t.Cleanup(func() { c.Delete(context.Background(), id) })

	_, found, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, id, sampleState()))
	got, found, err := c.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sampleState(), got)

	ttl, err := c.client.TTL(ctx, buildKey(id)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Delete(ctx, id))
	_, found, err = c.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "jobrec:session:abc", buildKey("abc"))
}
