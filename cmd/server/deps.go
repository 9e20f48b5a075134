package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stellarinsights/stellarinsights/api/internal/config"
	"github.com/stellarinsights/stellarinsights/api/internal/handler"
	"github.com/stellarinsights/stellarinsights/api/internal/pkg/database"
	pgrepo "github.com/stellarinsights/stellarinsights/api/internal/repository/postgres"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Database connections
	Postgres *database.PostgresDB

	// Repositories
	AnchorRepo *pgrepo.AnchorRepository
	AssetRepo  *pgrepo.AssetRepository

	// Handlers
	HealthHandler  *handler.HealthHandler
	AnchorsHandler *handler.AnchorsHandler
	AssetsHandler  *handler.AssetsHandler
}

// initDependencies initializes all dependencies
func initDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	ctx := context.Background()

	// Initialize PostgreSQL using database wrapper
	pgDB, err := database.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	deps.Postgres = pgDB

	// Repositories
	deps.AnchorRepo = pgrepo.NewAnchorRepository(pgDB)
	deps.AssetRepo = pgrepo.NewAssetRepository(pgDB, deps.AnchorRepo)

	// Handlers
	deps.HealthHandler = handler.NewHealthHandler(pgDB.Pool, appVersion)
	deps.AnchorsHandler = handler.NewAnchorsHandler(deps.AnchorRepo, logger)
	deps.AssetsHandler = handler.NewAssetsHandler(deps.AssetRepo, logger)

	return deps, nil
}

// Close releases all held resources
func (d *Dependencies) Close() {
	if d.Postgres != nil {
		d.Postgres.Close()
	}
}
