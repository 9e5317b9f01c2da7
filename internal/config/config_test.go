package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "DB_POOL_SIZE", "CACHE_TTL",
		"CATALOG_FILE", "LOG_LEVEL", "LOG_FORMAT", "ALLOWED_ORIGINS",
		"MODEL_LATENCY_MIN", "MODEL_LATENCY_MAX", "SEED_DATABASE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 20, cfg.DBPoolSize)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 300*time.Millisecond, cfg.LatencyMin)
	assert.Equal(t, 800*time.Millisecond, cfg.LatencyMax)
	assert.True(t, cfg.SeedDatabase)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test, ,http://b.test ")
	t.Setenv("SEED_DATABASE", "no")
	t.Setenv("MODEL_LATENCY_MIN", "0s")
	t.Setenv("MODEL_LATENCY_MAX", "0s")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SeedDatabase)
	assert.Zero(t, cfg.LatencyMax)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestLoad_InvalidLatencyRange(t *testing.T) {
	t.Setenv("MODEL_LATENCY_MIN", "900ms")
	t.Setenv("MODEL_LATENCY_MAX", "100ms")

	_, err := Load()
	assert.Error(t, err)
}
