package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/adboard-api/internal/api"
	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/platform/logger"
	"github.com/phrazzld/adboard-api/internal/redact"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

// Authorization schemes accepted in the Authorization header.
const (
	SchemeToken  = "Token"
	SchemeBearer = "Bearer"
)

// Authorization errors.
var (
	// ErrMissingCredentials is returned when a guarded route is called anonymously.
	ErrMissingCredentials = fmt.Errorf("%w: authorization credentials were not provided", domain.ErrUnauthorized)

	// ErrNotOwner is returned when the caller does not own the addressed resource.
	ErrNotOwner = fmt.Errorf("%w: not the resource owner", domain.ErrForbidden)
)

// AuthMiddleware resolves the caller from a token in the Authorization header.
type AuthMiddleware struct {
	jwtService auth.JWTService
	users      store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Resolve attaches the authenticated user to the request context when a
// "Token <jwt>" or "Bearer <jwt>" header is present. Requests without such a
// header pass through anonymously. A token that is presented but invalid,
// expired, or names a deleted user is rejected with 401 on every route.
func (m *AuthMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContextOrDefault(r.Context(), slog.Default())

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrExpiredToken) {
				log.Error("failed to validate token", "error", redact.Error(err))
			}
			api.HandleAPIError(w, r, err, "")
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				log.Debug("token names a user that no longer exists", "user_id", claims.UserID)
				api.HandleAPIError(w, r, auth.ErrInvalidToken, "")
				return
			}
			api.HandleAPIError(w, r, err, "")
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), user)))
	})
}

// bearerToken extracts the token from a Token or Bearer Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, value, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok {
		return "", false
	}
	if scheme != SchemeToken && scheme != SchemeBearer {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// RequireAuthenticated rejects anonymous requests with 401.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := shared.Principal(r.Context()); !ok {
			api.HandleAPIError(w, r, ErrMissingCredentials, "Authorization credentials were not provided")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPrincipal returns the authenticated user from the request context.
func GetPrincipal(r *http.Request) (*domain.User, bool) {
	return shared.Principal(r.Context())
}
