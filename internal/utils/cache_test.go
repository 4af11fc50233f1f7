package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, time.Minute), mr
}

func TestCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	var out []int
	found, err := c.Get(ctx, "chart:2024:1", &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Set(ctx, "chart:2024:1", []int{1, 2, 3}))
	found, err = c.Get(ctx, "chart:2024:1", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 2, 3}, out)

	mr.FastForward(2 * time.Minute)
	found, err = c.Get(ctx, "chart:2024:1", &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestCacheDeletePrefix(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, "hasil:list:a", 1))
	require.NoError(t, c.Set(ctx, "hasil:chart:b", 2))
	require.NoError(t, c.Set(ctx, "other", 3))

	require.NoError(t, c.DeletePrefix(ctx, "hasil:"))
	require.False(t, mr.Exists("hasil:list:a"))
	require.False(t, mr.Exists("hasil:chart:b"))
	require.True(t, mr.Exists("other"))

	require.NoError(t, c.DeletePrefix(ctx, "nothing:"))
}

func TestNilCache(t *testing.T) {
	var c *Cache
	ctx := context.Background()
	var out int
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, c.Set(ctx, "k", 1))
	require.NoError(t, c.DeletePrefix(ctx, "k"))
}

func TestCacheGeneration(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	gen, err := c.Generation(ctx, "hasil:gen")
	require.NoError(t, err)
	require.Zero(t, gen)

	gen, err = c.BumpGeneration(ctx, "hasil:gen")
	require.NoError(t, err)
	require.Equal(t, int64(1), gen)

	gen, err = c.Generation(ctx, "hasil:gen")
	require.NoError(t, err)
	require.Equal(t, int64(1), gen)

	var nilCache *Cache
	gen, err = nilCache.BumpGeneration(ctx, "hasil:gen")
	require.NoError(t, err)
	require.Zero(t, gen)
}
