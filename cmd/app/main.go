package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/api"
	"github.com/alexivanou/travel-planner/internal/cache"
	"github.com/alexivanou/travel-planner/internal/config"
	"github.com/alexivanou/travel-planner/internal/database"
	"github.com/alexivanou/travel-planner/internal/integrity"
	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/seeder"
	"github.com/alexivanou/travel-planner/internal/service"
	"github.com/alexivanou/travel-planner/internal/stats"
	"github.com/alexivanou/travel-planner/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	if err := database.Migrate(db, cfg.DB, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	store := repository.NewStore(db)

	if cfg.Seeder.AutoSeed {
		if err := autoSeed(ctx, db, store, cfg.Seeder, logger); err != nil {
			logger.Fatal("Failed to auto-seed database", zap.Error(err))
		}
	}

	c := cache.NewNoop()
	if cfg.Cache.Enabled() {
		client, err := cache.Connect(ctx, cfg.Cache)
		if err != nil {
			// The cache only holds derived data, so the app keeps running without it
			logger.Warn("Redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer client.Close()
			c = cache.NewRedisCache(client, cfg.Cache.TTL, logger)
			logger.Info("Connected to Redis", zap.String("addr", cfg.Cache.RedisAddr))
		}
	}

	manager := integrity.NewManager(store, logger)
	catalog := service.NewService(store.Repos(), manager, c, logger)
	trips := wizard.NewService(store, c, logger)
	statsCollector := stats.NewCollector(db, cfg.DB)
	router := api.NewRouter(catalog, trips, statsCollector, cfg.Server, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// autoSeed loads the bundled catalog into an empty database
func autoSeed(ctx context.Context, db *sqlx.DB, store *repository.Store, cfg config.SeederConfig, logger *zap.Logger) error {
	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		logger.Warn("Failed to check if database is empty", zap.Error(err))
		return nil
	}
	if !isEmpty {
		return nil
	}

	if _, err := os.Stat(cfg.DataFile); err != nil {
		logger.Warn("Catalog file not found, skipping seed", zap.String("file", cfg.DataFile))
		return nil
	}

	logger.Info("Database is empty, auto-seeding data...", zap.String("file", cfg.DataFile))
	catalog, err := seeder.ParseFile(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}
	if _, err := seeder.Load(ctx, store, catalog, logger); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	return nil
}
