// Package logger configures the process-wide slog default and threads
// request-scoped loggers through context.
package logger

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{}

// Setup installs the default slog handler. Every record carries the
// service name so logs aggregated across the platform stay attributable.
// Unknown formats fall back to text, unknown levels to info.
func Setup(service, level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h).With("service", service))
}

// WithRequestID stores the request id for FromContext to pick up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// FromContext returns the default logger, tagged with the request id when
// the context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		log = log.With("request_id", id)
	}
	return log
}

// WithComponent tags the default logger with a component name.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
