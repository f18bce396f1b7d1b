package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUsername is returned when a user has no username.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyHashedPassword is returned when a user is persisted without a password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrEmptyTitle is returned when an advertisement has no title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyText is returned when an advertisement has no text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrUnauthorized is returned when a request lacks valid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller may not act on a resource.
	ErrForbidden = errors.New("forbidden")
)
