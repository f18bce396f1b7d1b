package api

import (
	"net/http"

	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/schema"
	"github.com/phrazzld/adboard-api/internal/service"
)

// AdvertisementHandler serves /advertisement and /advertisement/{id}.
type AdvertisementHandler struct {
	ads service.AdvertisementService
}

// NewAdvertisementHandler creates a new AdvertisementHandler.
func NewAdvertisementHandler(ads service.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{ads: ads}
}

// List handles GET /advertisement. An owner_id query parameter narrows the
// list to one user's advertisements.
func (h *AdvertisementHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		ads []domain.Advertisement
		err error
	)
	if raw := r.URL.Query().Get("owner_id"); raw != "" {
		ownerID, parseErr := parseOwnerID(raw)
		if parseErr != nil {
			HandleAPIError(w, r, parseErr, "")
			return
		}
		ads, err = h.ads.ListByOwner(r.Context(), ownerID)
	} else {
		ads, err = h.ads.List(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, advertisementsToResponse(ads))
}

// Get handles GET /advertisement/{id}.
func (h *AdvertisementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ad, err := h.ads.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, advertisementToResponse(ad))
}

// Create handles POST /advertisement. The owner is always the caller.
func (h *AdvertisementHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.Principal(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authorization credentials were not provided")
		return
	}

	input, err := schema.Decode[schema.CreateAdvertisement, domain.NewAdvertisementInput](r.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ad, err := h.ads.Create(r.Context(), principal.ID, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, advertisementToResponse(ad))
}

// Update handles PATCH /advertisement/{id}.
func (h *AdvertisementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	patch, err := schema.Decode[schema.UpdateAdvertisement, domain.AdvertisementPatch](r.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	ad, err := h.ads.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, advertisementToResponse(ad))
}

// Delete handles DELETE /advertisement/{id}.
func (h *AdvertisementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.ads.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondNoContent(w)
}
