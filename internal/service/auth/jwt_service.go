package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the user that expires after the
	// configured lifetime.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies the signature and expiry of tokenString and returns its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a token.
type Claims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
