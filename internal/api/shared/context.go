package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/adboard-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// PrincipalContextKey is the context key for the authenticated user
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on every response.
	TraceIDHeader = "X-Trace-Id"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a 32-character hex string.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithPrincipal stores the authenticated user in the context.
func WithPrincipal(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, user)
}

// Principal returns the authenticated user, if any.
func Principal(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(PrincipalContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
