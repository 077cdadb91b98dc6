// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	// Context keys for logging
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyActorID   ContextKey = "actor_id"
	ContextKeyClientIP  ContextKey = "client_ip"
	ContextKeyJobID     ContextKey = "job_id"
)

// SetupLogger builds the process logger and installs it as the slog default.
// format is "json" or "text"; anything else falls back to json.
func SetupLogger(level string, format string) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, level, format))
	slog.SetDefault(logger)
	return logger
}

// NewHandler returns the handler chain used by SetupLogger:
// base -> context enrichment -> sanitization.
func NewHandler(w io.Writer, level string, format string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: strings.EqualFold(level, "debug"),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(format, groups, a)
		},
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = NewPrettyTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return NewSanitizationHandler(NewContextHandler(handler))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID stores the request id for log enrichment.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

func contextKeys() []ContextKey {
	return []ContextKey{
		ContextKeyRequestID,
		ContextKeyActorID,
		ContextKeyClientIP,
		ContextKeyJobID,
	}
}

func extractContextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	var attrs []slog.Attr
	for _, key := range contextKeys() {
		val := ctx.Value(key)
		if val == nil {
			continue
		}
		keyStr := string(key)
		switch v := val.(type) {
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(keyStr, v))
			}
		case uuid.UUID:
			attrs = append(attrs, slog.String(keyStr, v.String()))
		case *uuid.UUID:
			if v != nil {
				attrs = append(attrs, slog.String(keyStr, v.String()))
			}
		default:
			attrs = append(attrs, slog.Any(keyStr, v))
		}
	}
	return attrs
}

func replaceAttr(format string, _ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
		}
	}

	// Rename level key for log aggregators
	if a.Key == slog.LevelKey && format != "text" {
		a.Key = "severity"
	}

	if strings.HasSuffix(a.Key, "_ms") {
		if d, ok := a.Value.Any().(time.Duration); ok {
			a.Value = slog.Int64Value(d.Milliseconds())
		}
	}

	return a
}
