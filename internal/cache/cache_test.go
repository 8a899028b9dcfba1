package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/juju/clock/testclock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/cache"
)

func exercise(t *testing.T, c cache.Cache, expire func(time.Duration)) {
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "drills:serve", `{"kind":"drill_list"}`, time.Minute))
	require.NoError(t, c.Set(ctx, "forever", "1", 0))

	val, ok, err := c.Get(ctx, "drills:serve")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"kind":"drill_list"}`, val)

	expire(2 * time.Minute)

	_, ok, err = c.Get(ctx, "drills:serve")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "forever"))
	_, ok, err = c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory(t *testing.T) {
	clk := testclock.NewClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := cache.NewMemory(clk)
	defer c.Close()
	exercise(t, c, clk.Advance)
}

func TestRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	c, err := cache.NewRedis(&redis.Options{Addr: srv.Addr()}, "acecourt:")
	require.NoError(t, err)
	defer c.Close()

	exercise(t, c, srv.FastForward)
	assert.False(t, srv.Exists("acecourt:drills:serve"))
}

func TestRedisPrefix(t *testing.T) {
	srv := miniredis.RunT(t)
	c, err := cache.NewRedis(&redis.Options{Addr: srv.Addr()}, "acecourt:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(context.Background(), "revoked:abc", "1", time.Hour))
	got, err := srv.Get("acecourt:revoked:abc")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, time.Hour, srv.TTL("acecourt:revoked:abc"))
}

func TestRedisUnreachable(t *testing.T) {
	_, err := cache.NewRedis(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1}, "")
	assert.Error(t, err)
}
