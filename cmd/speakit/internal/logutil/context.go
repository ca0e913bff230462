package logutil

import (
	"context"
	"log/slog"
)

type logContextKey struct{}

func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, logContextKey{}, log)
}

// FromContext returns the logger installed by WithLogger, or slog's default logger so that
// commands stay usable in tests that skip the root's setup.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(logContextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
