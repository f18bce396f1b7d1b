package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/adboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/adboard-api/internal/api/middleware"
	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/config"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/service"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

// routerDeps is everything newRouter wires together.
type routerDeps struct {
	logger         *slog.Logger
	cors           config.CORSConfig
	requestTimeout int // seconds; 0 disables the per-request timeout

	jwtService           auth.JWTService
	userStore            store.UserStore
	advertisementStore   store.AdvertisementStore
	userService          service.UserService
	advertisementService service.AdvertisementService

	healthCheck func(ctx context.Context) error
}

// newRouter creates the application router with all routes and middleware.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(deps.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))
	if deps.requestTimeout > 0 {
		r.Use(middleware.Timeout(time.Duration(deps.requestTimeout) * time.Second))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("Path '%s' not found", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed,
			fmt.Sprintf("HTTP-method '%s' on path '%s' not allowed", r.Method, r.URL.Path))
	})

	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.jwtService, deps.userStore)
	userHandler := api.NewUserHandler(deps.userService)
	adHandler := api.NewAdvertisementHandler(deps.advertisementService)
	authHandler := api.NewAuthHandler(deps.userService, deps.jwtService)

	requireUserOwner := apiMiddleware.RequireOwner(domain.KindUser, apiMiddleware.UserOwnership())
	requireAdOwner := apiMiddleware.RequireOwner(domain.KindAdvertisement,
		apiMiddleware.AdvertisementOwnership(deps.advertisementStore))

	r.Post("/login", authHandler.Login)

	const byID = "/{id:[0-9]+}"

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Resolve)

		r.Get("/user", userHandler.List)
		r.Post("/user", userHandler.Create)
		r.Get("/user"+byID, userHandler.Get)
		r.With(requireUserOwner).Patch("/user"+byID, userHandler.Update)
		r.With(requireUserOwner).Delete("/user"+byID, userHandler.Delete)

		r.Get("/advertisement", adHandler.List)
		r.With(apiMiddleware.RequireAuthenticated).Post("/advertisement", adHandler.Create)
		r.Get("/advertisement"+byID, adHandler.Get)
		r.With(requireAdOwner).Patch("/advertisement"+byID, adHandler.Update)
		r.With(requireAdOwner).Delete("/advertisement"+byID, adHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.healthCheck != nil {
			if err := deps.healthCheck(r.Context()); err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
