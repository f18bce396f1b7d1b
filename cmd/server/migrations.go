package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/adboard-api/internal/platform/postgres"
)

// runMigrations executes a goose command. Each run gets a correlation id so
// its log lines can be grouped.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With(slog.String("migration_run_id", uuid.NewString()))
	migrationLogger.Info("Executing migrations", "command", command)
	return postgres.Migrate(ctx, db, command, migrationLogger)
}
