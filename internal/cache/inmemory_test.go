package cache

import (
	"context"
	"testing"

	"github.com/lunaria/lunaria/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestCache(enabled bool) Cache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	return NewInMemoryCache(cfg)
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	c.Set(ctx, "stats:v1:summary", 42, 0)
	v, found := c.Get(ctx, "stats:v1:summary")
	assert.True(t, found)
	assert.Equal(t, 42, v)

	_, found = c.Get(ctx, "stats:v1:missing")
	assert.False(t, found)
}

func TestDisabledCacheNeverStores(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(false)

	c.Set(ctx, "stats:v1:summary", 42, 0)
	_, found := c.Get(ctx, "stats:v1:summary")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	c.Set(ctx, PrefixStats+"summary", 1, 0)
	c.Set(ctx, PrefixStats+"revenue", 2, 0)
	c.Set(ctx, PrefixDashboard+"customers", 3, 0)

	c.DeleteByPrefix(ctx, PrefixStats)

	_, found := c.Get(ctx, PrefixStats+"summary")
	assert.False(t, found)
	_, found = c.Get(ctx, PrefixStats+"revenue")
	assert.False(t, found)
	_, found = c.Get(ctx, PrefixDashboard+"customers")
	assert.True(t, found)
}

func TestFlushDropsEverything(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	c.Set(ctx, PrefixStats+"summary", 1, 0)
	c.Set(ctx, PrefixDashboard+"customers", 2, 0)

	c.Flush(ctx)

	_, found := c.Get(ctx, PrefixStats+"summary")
	assert.False(t, found)
	_, found = c.Get(ctx, PrefixDashboard+"customers")
	assert.False(t, found)
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "stats:v1::revenue:week", GenerateKey(PrefixStats, "revenue", "week"))
}
