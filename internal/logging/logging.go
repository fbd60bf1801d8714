package logging

import (
	"context"
	"log/slog"
)

// contextKey is the key type used to store the logger in a context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a child context carrying the given logger.
// Callers typically enrich the logger with operation-scoped fields first.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the logger stored in the context.
// It returns slog.Default() if none is present, so call sites never need a
// nil check.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
