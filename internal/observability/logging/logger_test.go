package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"artigos-api/internal/handler/http/requestid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	logger := NewLogger("warn")

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestWithRequestID(t *testing.T) {
	base := NewLogger("info")

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	withID := WithRequestID(ctx, base)
	assert.NotSame(t, base, withID)

	// No request ID in context leaves the logger untouched.
	same := WithRequestID(context.Background(), base)
	assert.Same(t, base, same)
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := NewLogger("info")

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Missing logger falls back to the default.
	assert.NotNil(t, FromContext(context.Background()))
}
