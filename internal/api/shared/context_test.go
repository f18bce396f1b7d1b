package shared

import (
	"context"
	"testing"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrincipal(t *testing.T) {
	t.Parallel()

	_, ok := Principal(context.Background())
	assert.False(t, ok)

	_, ok = Principal(WithPrincipal(context.Background(), nil))
	assert.False(t, ok)

	user := &domain.User{ID: 7, Username: "alice"}
	got, ok := Principal(WithPrincipal(context.Background(), user))
	assert.True(t, ok)
	assert.Same(t, user, got)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
}
