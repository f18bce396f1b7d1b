package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/platform/logger"
	"github.com/phrazzld/adboard-api/internal/service"
	"github.com/phrazzld/adboard-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users      service.UserService
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
	}
}

// Login handles POST /login. Credentials arrive as HTTP Basic; the response
// carries a freshly issued token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := shared.BasicCredentials(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Basic authorization credentials were not provided")
		return
	}

	user, err := h.users.Authenticate(r.Context(), username, password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to generate token", "error", err, "user_id", user.ID)
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, LoginResponse{AuthToken: token})
}
