package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
)

// Logging stores a request logger carrying the request and correlation IDs
// in the context (logging.FromContext) and logs start and completion.
// Completion is logged at Warn for 5xx so store outages stand out.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				args := make([]any, 0, len(r.Header))
				for _, a := range RedactHeaders(r.Header) {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			child.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
