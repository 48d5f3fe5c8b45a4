package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/alexivanou/travel-planner/internal/config"
	"github.com/alexivanou/travel-planner/internal/database"
	"github.com/alexivanou/travel-planner/internal/repository"
	"github.com/alexivanou/travel-planner/internal/seeder"
)

func main() {
	var (
		file  = flag.String("file", "", "Catalog TSV file (defaults to SEEDER_DATA_FILE)")
		force = flag.Bool("force", false, "Load even when the catalog already has countries")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if *file != "" {
		cfg.Seeder.DataFile = *file
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		if err := database.Migrate(db, cfg.DB, "migrations"); err != nil {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
	}

	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		logger.Fatal("Failed to inspect database", zap.Error(err))
	}
	if !isEmpty && !*force {
		logger.Warn("Catalog already loaded, use -force to import again")
		return
	}

	logger.Info("Parsing catalog...", zap.String("file", cfg.Seeder.DataFile))
	catalog, err := seeder.ParseFile(cfg.Seeder.DataFile)
	if err != nil {
		logger.Fatal("Failed to parse catalog", zap.Error(err))
	}

	summary, err := seeder.Load(ctx, repository.NewStore(db), catalog, logger)
	if err != nil {
		logger.Fatal("Failed to import catalog", zap.Error(err))
	}

	logger.Info("Data import completed successfully!",
		zap.Int("records", catalog.Size()),
		zap.Int("hotels", summary.Hotels),
	)
}
