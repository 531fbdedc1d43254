package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey ctxKey = "run_id"
	fileKey  ctxKey = "file"
)

// WithRunID stores the run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithFile stores the path of the file being processed in the context.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey, path)
}

// FileFromCtx extracts the file path from the context.
// Returns an empty string if absent.
func FileFromCtx(ctx context.Context) string {
	path, _ := ctx.Value(fileKey).(string)
	return path
}

// LogAttrs returns the context values as slog attributes, skipping absent ones.
func LogAttrs(ctx context.Context) []any {
	var attrs []any
	if id, ok := RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	if path := FileFromCtx(ctx); path != "" {
		attrs = append(attrs, slog.String("file", path))
	}
	return attrs
}
