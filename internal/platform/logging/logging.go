// Package logging builds the service's slog logger and carries it through
// contexts.
//
// The handler redacts credentials (see SensitiveHeaders and newRedactAttr)
// so access tokens handed over at sign-in never reach the output. Request
// scoped loggers are stored with WithLogger by the HTTP middleware and
// read back with FromContext; With enriches the stored logger in place.
//
// Engine log records name the entity they concern with the attribute
// helpers below, for example:
//
//	logger.WarnContext(ctx, "optimistic write rolled back",
//	    logging.Entity(taskID),
//	    slog.String("operation", "move task"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Attribute keys shared by engine log records.
const (
	KeyOwnerID  = "owner_id"
	KeyBoardID  = "board_id"
	KeyEntityID = "entity_id"
)

type contextKey struct{}

// New creates a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, offsets like "info+2" allowed); anything else
// means info. format "text" selects the text handler, anything else JSON.
// At debug level records carry their source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With stores FromContext(ctx).With(args...) in a new context.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// Owner names the identity a record concerns.
func Owner(id string) slog.Attr { return slog.String(KeyOwnerID, id) }

// Board names the board a record concerns.
func Board(id string) slog.Attr { return slog.String(KeyBoardID, id) }

// Entity names the board or task an optimistic write targeted.
func Entity(id string) slog.Attr { return slog.String(KeyEntityID, id) }
