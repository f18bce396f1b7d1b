package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerRequest(id string, principal *domain.User) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/resource/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(shared.IDParam, id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if principal != nil {
		ctx = shared.WithPrincipal(ctx, principal)
	}
	return req.WithContext(ctx)
}

func TestRequireOwnerUser(t *testing.T) {
	t.Parallel()

	handler := RequireOwner(domain.KindUser, UserOwnership())(principalEcho)
	alice := &domain.User{ID: 1, Username: "alice"}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, ownerRequest("1", alice))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, ownerRequest("2", alice))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, NotOwnerUserMessage, errorMessage(t, rr))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, ownerRequest("1", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, ownerRequest("0", alice))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequireOwnerAdvertisement(t *testing.T) {
	t.Parallel()

	db := mocks.NewMemoryDB()
	users := mocks.NewMockUserStore(db, mocks.PlainHasher{})
	ads := mocks.NewMockAdvertisementStore(db)
	ctx := context.Background()

	alice, err := users.Create(ctx, domain.NewUserInput{Username: "alice", Password: "QWErty123"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, domain.NewUserInput{Username: "bob", Password: "QWErty123"})
	require.NoError(t, err)
	_, err = ads.Create(ctx, domain.NewAdvertisementInput{OwnerID: alice.ID, Title: "Bike", Text: "Red"})
	require.NoError(t, err)

	handler := RequireOwner(domain.KindAdvertisement, AdvertisementOwnership(ads))(principalEcho)

	tests := []struct {
		name       string
		id         string
		principal  *domain.User
		wantStatus int
		wantError  string
	}{
		{"owner", "1", alice, http.StatusOK, ""},
		{"other user", "1", bob, http.StatusForbidden, NotOwnerAdvertisementMessage},
		{"missing advertisement", "9", alice, http.StatusNotFound, "Advertisement not found"},
		{"anonymous", "1", nil, http.StatusUnauthorized, "Authorization credentials were not provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, ownerRequest(tt.id, tt.principal))
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rr))
			}
		})
	}
}

func TestNotOwnerMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NotOwnerUserMessage, NotOwnerMessage(domain.KindUser))
	assert.Equal(t, NotOwnerAdvertisementMessage, NotOwnerMessage(domain.KindAdvertisement))
	assert.Equal(t, "You can only make changes to your own resources", NotOwnerMessage("comment"))
}

func TestRequireOwnerLookupFailure(t *testing.T) {
	t.Parallel()

	ads := mocks.NewMockAdvertisementStore(mocks.NewMemoryDB())
	ads.GetByIDFn = func(context.Context, int64) (*domain.Advertisement, error) {
		return nil, errors.New("connection refused")
	}
	handler := RequireOwner(domain.KindAdvertisement, AdvertisementOwnership(ads))(principalEcho)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, ownerRequest("1", &domain.User{ID: 1}))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
