package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	ok, err := c.Has(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	_, err := c.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheNoExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryCacheOptions{DefaultTTL: 10 * time.Millisecond})
	t.Cleanup(func() { _ = c.Close() })

	// Negative TTL pins the entry until invalidated.
	require.NoError(t, c.Set(ctx, "pinned", []byte("v"), -1))
	time.Sleep(20 * time.Millisecond)

	got, err := c.Get(ctx, "pinned")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheTagInvalidation(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Set(ctx, "c", []byte("3"), 0))
	require.NoError(t, c.Tag(ctx, "a", "blogPost", "path:/blog"))
	require.NoError(t, c.Tag(ctx, "b", "blogPost"))
	require.NoError(t, c.Tag(ctx, "c", "project"))

	removed, err := c.InvalidateTag(ctx, "blogPost")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Untagged entries survive.
	got, err := c.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), got)
}

func TestMemoryCacheInvalidateUnknownTag(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	removed, err := c.InvalidateTag(ctx, "nothing")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestMemoryCacheClear(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Tag(ctx, "k", "tag"))
	require.NoError(t, c.Clear(ctx))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	removed, err := c.InvalidateTag(ctx, "tag")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestMemoryCacheClosed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(MemoryCacheOptions{})
	require.NoError(t, c.Close())

	assert.ErrorIs(t, c.Set(ctx, "k", []byte("v"), 0), ErrCacheClosed)
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheClosed)
}

func TestMemoryCacheStats(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "miss")

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}
