package contextutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestLoggerFromContext(t *testing.T) {
	ctx := context.Background()
	if got := LoggerFromContext(ctx); got != slog.Default() {
		t.Error("LoggerFromContext() without logger should return the default logger")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if got := LoggerFromContext(WithLogger(ctx, logger)); got != logger {
		t.Error("LoggerFromContext() should return the stored logger")
	}

	wrongType := context.WithValue(ctx, loggerKey, "not a logger")
	if got := LoggerFromContext(wrongType); got != slog.Default() {
		t.Error("LoggerFromContext() with a wrong value type should fall back to the default logger")
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	ctx := WithRequestID(context.Background(), "abc-123")
	if got := RequestIDFromContext(ctx); got != "abc-123" {
		t.Errorf("RequestIDFromContext() = %q, want abc-123", got)
	}
}
