package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/adboard-api/internal/config"
	"github.com/phrazzld/adboard-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestSetupSetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "warn"})
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.Same(t, l, slog.Default())
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestLoggerWritesJSON(t *testing.T) {
	buf, l := logger.SetupTestLogger(t)

	l.Info("user created", "user_id", 7)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user created", entries[0]["msg"])
	assert.Equal(t, float64(7), entries[0]["user_id"])
}

func TestContextLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil)).With("trace_id", "abc")

	t.Run("returns stored logger", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, scoped, logger.FromContext(ctx))
	})

	t.Run("falls back when missing", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("nil fallback uses default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	})
}
