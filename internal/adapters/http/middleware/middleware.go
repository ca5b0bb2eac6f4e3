// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server chain runs in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → router
//
// RequireSession is mounted per route group by the router.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Chain composes middleware into one. The first argument is the outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to Recovery(RequestID(Logging(handler))).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// responseWriter records the status code for recovery, otel and logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records code. Only the first call takes effect.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// routePattern returns the matched chi route (e.g. /api/v1/boards/{boardId})
// so ids stay out of span names and metric labels. It falls back to the raw
// path outside a chi router or before routing has happened.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
