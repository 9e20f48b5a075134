package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"go.uber.org/zap"

	"github.com/stellarinsights/stellarinsights/api/internal/config"
	"github.com/stellarinsights/stellarinsights/api/internal/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies embedded schema migrations. It runs on a dedicated
// connection, not the pool, and must complete before the server starts
// accepting traffic.
func Migrate(ctx context.Context, cfg config.PostgresConfig) error {
	conn, err := pgx.Connect(ctx, DSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("failed to construct migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current schema version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		logger.Info("database schema up to date", zap.Int("version", len(m.Migrations)))
	} else {
		logger.Info("migrated database schema",
			zap.Int32("from", from),
			zap.Int("to", len(m.Migrations)),
		)
	}

	return nil
}
