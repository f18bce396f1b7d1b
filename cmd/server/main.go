// Package main implements the entry point for the adboard API server, a
// REST backend for users and the advertisements they post.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/adboard-api/internal/config"
	"github.com/phrazzld/adboard-api/internal/platform/logger"
	"github.com/phrazzld/adboard-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		fmt.Sprintf("run a migration command and exit (one of %v)", postgres.MigrationCommands))
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		log.Printf("adboard-api: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either executes a
// migration command or serves HTTP until ctx is cancelled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)

	db, err := openDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, migrateCmd, l)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, "up", l); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	slog.SetDefault(l)
	return app.Run(ctx)
}
