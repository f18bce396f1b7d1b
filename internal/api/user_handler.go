package api

import (
	"net/http"

	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/schema"
	"github.com/phrazzld/adboard-api/internal/service"
)

// UserHandler serves /user and /user/{id}. Ownership of PATCH and DELETE is
// enforced by middleware before these handlers run.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /user.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// Get handles GET /user/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Create handles POST /user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := schema.Decode[schema.CreateUser, domain.NewUserInput](r.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.users.Register(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Update handles PATCH /user/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	patch, err := schema.Decode[schema.UpdateUser, domain.UserPatch](r.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.users.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Delete handles DELETE /user/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondNoContent(w)
}
