package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client), mr
}

func TestRedisGetSet(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	_, found, err := r.Get(ctx, "content:blogPost|slug=missing")
	require.NoError(t, err)
	assert.False(t, found, "nil reply should be a miss, not an error")

	require.NoError(t, r.Set(ctx, "content:blogPost|slug=hello", []byte(`{"title":"Hello"}`), time.Minute))

	value, found, err := r.Get(ctx, "content:blogPost|slug=hello")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`{"title":"Hello"}`), value)
}

func TestRedisExpiry(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	require.NoError(t, r.Set(ctx, "content:homePage|", []byte(`{}`), 5*time.Minute))

	mr.FastForward(5*time.Minute + time.Second)

	_, found, err := r.Get(ctx, "content:homePage|")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisInvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	keys := []string{
		"content:portfolioEntry|cat=festival",
		"content:portfolioEntry|cat=bridal",
		"content:blogPost|slug=hello",
	}
	for _, key := range keys {
		require.NoError(t, r.Set(ctx, key, []byte("{}"), time.Minute))
	}

	removed, err := r.Invalidate(ctx, "content:portfolioEntry|")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, found, err := r.Get(ctx, "content:blogPost|slug=hello")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRedisReset(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	require.NoError(t, r.Set(ctx, "content:homePage|", []byte("{}"), time.Minute))
	require.NoError(t, r.Reset(ctx))

	_, found, err := r.Get(ctx, "content:homePage|")
	require.NoError(t, err)
	assert.False(t, found)
}
