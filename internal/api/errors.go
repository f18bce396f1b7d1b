package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/adboard-api/internal/api/shared"
	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/phrazzld/adboard-api/internal/schema"
	"github.com/phrazzld/adboard-api/internal/service"
	"github.com/phrazzld/adboard-api/internal/service/auth"
	"github.com/phrazzld/adboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *schema.ValidationError

	switch {
	// Bad request errors
	case errors.As(err, &validationErr),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "The provided authorization token is invalid"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "The provided password is invalid"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authorization credentials were not provided"

	case errors.Is(err, domain.ErrForbidden):
		return "You do not have permission to perform this action"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAdvertisementNotFound):
		return "Advertisement not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "A user with this username already exists"

	case errors.Is(err, store.ErrTitleExists):
		return "An advertisement with this title already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err: the status from
// MapErrorToStatusCode and either customMsg or the safe message. Validation
// errors are returned as their field list. Details only reach the logs.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, customMsg string) {
	status := MapErrorToStatusCode(err)

	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		shared.RespondWithErrorAndLog(w, r, status, validationErr.Fields, err)
		return
	}

	message := GetSafeErrorMessage(err)
	if customMsg != "" && status != http.StatusInternalServerError {
		message = customMsg
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
