//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *RedisStore {
	t.Helper()
	ctx := context.Background()

	container, err := redis.Run(ctx,
		"redis:7.4-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	store, err := NewRedisStoreFromURL(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStore_CacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupRedis(t)
	c := NewCache(store, time.Minute)
	key := SearchKey("wireless", domain.Filters{})
	products := catalog.Default().Products()[:2]

	_, found, err := c.GetProducts(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.SetProducts(ctx, key, products))
	got, found, err := c.GetProducts(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, products, got)

	require.NoError(t, c.Invalidate(ctx))
	_, found, err = c.GetProducts(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Ping(ctx))
}
