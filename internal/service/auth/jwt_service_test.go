package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/adboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func newTestService(t *testing.T, secret string, now time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(secret, 60*time.Minute, func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, testSecret, fixedTime)

	token, err := svc.GenerateToken(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3, "token should be a three-part JWT")

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(60*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	other, err := svc.GenerateToken(context.Background(), 42)
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "tokens should carry a unique id")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestService(t, testSecret, fixedTime)
	token, err := issuer.GenerateToken(context.Background(), 7)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *hmacJWTService
		token   string
		wantErr error
	}{
		{
			name:  "valid token",
			svc:   issuer,
			token: token,
		},
		{
			name:  "valid just before expiry",
			svc:   newTestService(t, testSecret, fixedTime.Add(59*time.Minute)),
			token: token,
		},
		{
			name:    "expired token",
			svc:     newTestService(t, testSecret, fixedTime.Add(61*time.Minute)),
			token:   token,
			wantErr: ErrExpiredToken,
		},
		{
			name:    "invalid signature",
			svc:     newTestService(t, wrongSecret, fixedTime),
			token:   token,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "tampered payload",
			svc:     issuer,
			token:   tamper(token),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			svc:     issuer,
			token:   "invalid_token",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong algorithm",
			svc:     issuer,
			token:   noneAlgToken(t),
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := tt.svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), claims.UserID)
		})
	}
}

// tamper flips one character of the payload segment.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'e' {
		payload[0] = 'f'
	} else {
		payload[0] = 'e'
	}
	parts[1] = string(payload)
	return strings.Join(parts, ".")
}

func noneAlgToken(t *testing.T) string {
	t.Helper()
	claims := jwtCustomClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}
