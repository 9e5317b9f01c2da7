package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	RedisURL       string
	DBPoolSize     int
	CacheTTL       time.Duration
	CatalogFile    string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	LatencyMin     time.Duration
	LatencyMax     time.Duration
	SeedDatabase   bool
}

// Load configuration from env, reading .env first when present.
// An empty DATABASE_URL or REDIS_URL disables that backend.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvInt("PORT", 8080),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		DBPoolSize:     getEnvInt("DB_POOL_SIZE", 20),
		CacheTTL:       getEnvDuration("CACHE_TTL", 10*time.Minute),
		CatalogFile:    getEnv("CATALOG_FILE", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		LatencyMin:     getEnvDuration("MODEL_LATENCY_MIN", 300*time.Millisecond),
		LatencyMax:     getEnvDuration("MODEL_LATENCY_MAX", 800*time.Millisecond),
		SeedDatabase:   getEnvBool("SEED_DATABASE", true),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.DBPoolSize < 1 {
		return nil, fmt.Errorf("invalid DB_POOL_SIZE %d", cfg.DBPoolSize)
	}
	if cfg.LatencyMin < 0 || cfg.LatencyMax < cfg.LatencyMin {
		return nil, fmt.Errorf("invalid model latency range %s..%s", cfg.LatencyMin, cfg.LatencyMax)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			s := strings.TrimSpace(p)
			if s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return fallback
}
