package cache_test

import (
	"context"
	"errors"
	"testing"

	"cleanrate/infras/otel/mocks"
	"cleanrate/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct {
	TotalRooms int    `json:"total_rooms"`
	Period     string `json:"period"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRedisCache_SaveGetStruct(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "dashboard:week", summary{TotalRooms: 12, Period: "W18-2024"}, 60))
	assert.True(t, mr.Exists("dashboard:week"))
	assert.Equal(t, 60, int(mr.TTL("dashboard:week").Seconds()))

	var got summary
	require.NoError(t, c.Get(ctx, "dashboard:week", &got))
	assert.Equal(t, summary{TotalRooms: 12, Period: "W18-2024"}, got)
}

func TestRedisCache_SaveGetString(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "plain", "value", 10))

	var got string
	require.NoError(t, c.Get(ctx, "plain", &got))
	assert.Equal(t, "value", got)
}

func TestRedisCache_GetMissing(t *testing.T) {
	c, _ := newCache(t)

	var got summary
	err := c.Get(context.Background(), "missing", &got)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "facility:list", 1, 60))
	require.NoError(t, c.Save(ctx, "employee:get:1", 1, 60))
	require.NoError(t, c.Save(ctx, "employee:get:2", 1, 60))

	require.NoError(t, c.Delete(ctx, "facility:list"))
	assert.False(t, mr.Exists("facility:list"))

	require.NoError(t, c.Clear(ctx, "employee:*"))
	assert.False(t, mr.Exists("employee:get:1"))
	assert.False(t, mr.Exists("employee:get:2"))
}
