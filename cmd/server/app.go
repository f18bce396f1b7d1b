package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/adboard-api/internal/config"
	"github.com/phrazzld/adboard-api/internal/platform/postgres"
	"github.com/phrazzld/adboard-api/internal/service"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore          store.UserStore
	advertisementStore store.AdvertisementStore

	jwtService           auth.JWTService
	passwords            auth.PasswordHasher
	userService          service.UserService
	advertisementService service.AdvertisementService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database pool is owned by the application from here on and closed by cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)
	app.passwords = hasher
	logger.Debug("Password hasher initialized", "bcrypt_cost", hasher.Cost())

	app.userStore = postgres.NewPostgresUserStore(db, app.passwords, logger)
	app.advertisementStore = postgres.NewPostgresAdvertisementStore(db, logger)

	app.userService = service.NewUserService(app.userStore, app.passwords, db, logger)
	app.advertisementService = service.NewAdvertisementService(app.advertisementStore, db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// routerDeps returns what the router needs from the application.
func (app *application) routerDeps() routerDeps {
	return routerDeps{
		logger:               app.logger,
		cors:                 app.config.CORS,
		requestTimeout:       app.config.Server.RequestTimeoutSeconds,
		jwtService:           app.jwtService,
		userStore:            app.userStore,
		advertisementStore:   app.advertisementStore,
		userService:          app.userService,
		advertisementService: app.advertisementService,
		healthCheck:          app.db.PingContext,
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, newRouter(app.routerDeps())); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
