package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listPayload struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

func testCache(t *testing.T) *ProjectCache {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	c.Set(ctx, "all", listPayload{Count: 2, Names: []string{"Tomato Tracker", "Herb Wall"}})

	var got listPayload
	require.True(t, c.Get(ctx, "all", &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []string{"Tomato Tracker", "Herb Wall"}, got.Names)
}

func TestCache_MissReturnsFalse(t *testing.T) {
	c := testCache(t)

	var got listPayload
	assert.False(t, c.Get(context.Background(), "all", &got))
}

func TestCache_VariantsAreIndependent(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	c.Set(ctx, "all", listPayload{Count: 3})
	c.Set(ctx, "search:tomato", listPayload{Count: 1})

	var got listPayload
	require.True(t, c.Get(ctx, "search:tomato", &got))
	assert.Equal(t, 1, got.Count)
}

func TestCache_InvalidateDropsAllVariants(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	c.Set(ctx, "all", listPayload{Count: 3})
	c.Set(ctx, "search:tomato", listPayload{Count: 1})

	c.Invalidate(ctx)

	var got listPayload
	assert.False(t, c.Get(ctx, "all", &got))
	assert.False(t, c.Get(ctx, "search:tomato", &got))
}

func TestCache_NilCacheIsDisabled(t *testing.T) {
	var c *ProjectCache
	ctx := context.Background()

	// Every operation is a safe no-op.
	c.Set(ctx, "all", listPayload{Count: 1})
	var got listPayload
	assert.False(t, c.Get(ctx, "all", &got))
	c.Invalidate(ctx)
	assert.NoError(t, c.Close())
}

func TestNew_EmptyURLDisables(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not-a-url")
	assert.Error(t, err)
}
