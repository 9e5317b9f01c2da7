package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/cache"
	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/config"
	"github.com/actuallystonmai/storefront-assistant/internal/handler"
	"github.com/actuallystonmai/storefront-assistant/internal/logging"
	"github.com/actuallystonmai/storefront-assistant/internal/model"
	"github.com/actuallystonmai/storefront-assistant/internal/reply"
	"github.com/actuallystonmai/storefront-assistant/internal/repository"
	"github.com/actuallystonmai/storefront-assistant/internal/router"
	"github.com/actuallystonmai/storefront-assistant/internal/service"
	"github.com/actuallystonmai/storefront-assistant/migrations"
	"github.com/actuallystonmai/storefront-assistant/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "storefront-assistant",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ Catalog ---------------
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = connectDB(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		// for migrate-down using CLI command
		if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
			if _, err := pool.Exec(ctx, migrations.Down); err != nil {
				log.Fatal().Err(err).Msg("failed to migrate down")
			}
			log.Info().Msg("migrations dropped")
			return
		}

		if _, err := pool.Exec(ctx, migrations.Up); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate up")
		}
		log.Info().Msg("migrations applied")
	}

	cat, source, err := loadCatalog(ctx, cfg, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}
	log.Info().Str("source", source).Int("products", cat.Len()).Strs("categories", cat.Categories()).Msg("catalog loaded")

	// ------------ Cache ---------------
	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStoreFromURL(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()
		store = redisStore
		log.Info().Msg("connected to Redis")
	} else {
		store = cache.NewMemoryStore(0)
		log.Info().Msg("using in-memory cache")
	}
	resultCache := cache.NewCache(store, cfg.CacheTTL)

	// a fresh catalog may differ from what earlier processes cached
	if err := resultCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}

	// ------------ Model + Service ---------------
	seed := time.Now().UnixNano()
	modelClient := model.NewClient(cat, model.Options{
		Delay: model.NewJitterDelay(cfg.LatencyMin, cfg.LatencyMax, seed),
		Rand:  reply.NewLockedRand(seed),
	})
	svc := service.NewService(resultCache, modelClient, log)
	h := handler.NewHandler(svc, log)

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(h, log, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func connectDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := waitForDB(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Msg("connected to PostgreSQL")
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Info().Msgf("waiting for database... (%d/30)", i+1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

// loadCatalog picks the first configured source: Postgres, then CATALOG_FILE,
// then the built-in products.
func loadCatalog(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, log zerolog.Logger) (*catalog.Catalog, string, error) {
	if pool != nil {
		repo := repository.NewRepository(pool)
		if err := checkSeed(ctx, cfg, pool, repo, log); err != nil {
			return nil, "", fmt.Errorf("check seed: %w", err)
		}
		products, err := repo.ListProducts(ctx)
		if err != nil {
			return nil, "", err
		}
		if len(products) > 0 {
			c, err := catalog.New(products)
			return c, "postgres", err
		}
		log.Warn().Msg("products table is empty, falling back")
	}

	if cfg.CatalogFile != "" {
		c, err := catalog.LoadFile(cfg.CatalogFile)
		return c, "file", err
	}

	return catalog.Default(), "default", nil
}

func checkSeed(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, repo *repository.Repository, log zerolog.Logger) error {
	if !cfg.SeedDatabase {
		return nil
	}
	count, err := repo.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int("products", count).Msg("database already seeded, skipping")
		return nil
	}

	products := catalog.DefaultProducts()
	if cfg.CatalogFile != "" {
		c, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return err
		}
		products = c.Products()
	}
	return seeds.Setup(ctx, pool, products, log)
}
