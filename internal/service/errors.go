package service

import "errors"

// Service errors. Callers check them with errors.Is; the API layer maps them
// to HTTP status codes.
var (
	// ErrInvalidCredentials indicates the supplied password does not match the
	// stored hash. API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("the provided password is invalid")
)
