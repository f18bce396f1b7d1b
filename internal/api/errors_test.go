package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/schema"
	"github.com/phrazzld/adboard-api/internal/service"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{&schema.ValidationError{}, http.StatusBadRequest},
		{store.ErrInvalidEntity, http.StatusBadRequest},
		{fmt.Errorf("%w: abc", domain.ErrInvalidID), http.StatusBadRequest},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrExpiredToken, http.StatusUnauthorized},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", domain.ErrForbidden), http.StatusForbidden},
		{store.NewStoreError("user", "get", store.ErrUserNotFound), http.StatusNotFound},
		{store.ErrAdvertisementNotFound, http.StatusNotFound},
		{store.ErrUsernameExists, http.StatusConflict},
		{store.ErrTitleExists, http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The provided authorization token is invalid", GetSafeErrorMessage(auth.ErrExpiredToken))
	assert.Equal(t, "A user with this username already exists", GetSafeErrorMessage(store.ErrUsernameExists))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("pq: secret detail")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	t.Run("custom message", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleAPIError(recorder, httptest.NewRequest(http.MethodGet, "/", nil), domain.ErrForbidden, "Not yours")
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "Not yours", errorBody(t, recorder))
	})

	t.Run("internal errors keep the generic message", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleAPIError(recorder, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"), "custom")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, "An unexpected error occurred", errorBody(t, recorder))
	})

	t.Run("validation errors list fields", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		err := fmt.Errorf("decode: %w", &schema.ValidationError{Fields: []schema.FieldError{
			{Field: "title", Message: "is required"},
		}})
		HandleAPIError(recorder, httptest.NewRequest(http.MethodPost, "/", nil), err, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":[{"field":"title","message":"is required"}]}`, recorder.Body.String())
	})
}
