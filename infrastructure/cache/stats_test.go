package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-trends-api/internal/config"
	"github.com/vfg2006/ad-trends-api/internal/domain"
)

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "ad-trends:stats:owner-1", StatsKey("owner-1"))
}

func TestNoopStatsCache(t *testing.T) {
	c := NewNoopStatsCache()
	ctx := context.Background()

	c.Set(ctx, "owner-1", &domain.DashboardStats{TotalAds: 3})
	stats, ok := c.Get(ctx, "owner-1")
	assert.False(t, ok)
	assert.Nil(t, stats)

	c.Invalidate(ctx, "owner-1")
}

func TestRedisStatsCache_UnreachableServerIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisStatsCache(client, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "owner-1", &domain.DashboardStats{TotalAds: 3})
	stats, ok := c.Get(ctx, "owner-1")
	assert.False(t, ok)
	assert.Nil(t, stats)
	c.Invalidate(ctx, "owner-1")
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.Redis{URL: "://bad"})
	require.Error(t, err)
}
