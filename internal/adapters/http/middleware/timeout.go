package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/dto"
)

// Timeout puts a deadline on the request context and stops waiting for the
// handler when it passes. Writes go straight to the client until then; if
// the handler has not started its response by the deadline a 504 problem
// is sent and its later writes fail with http.ErrHandlerTimeout.
//
// Optimistic writes already submitted keep running, only the caller's
// ?wait=true wait is cut short.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			dw := &deadlineWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer close(done)
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				select {
				case v := <-panicked:
					// Hand the panic to Recovery on this goroutine.
					panic(v)
				default:
				}
			case <-ctx.Done():
				dw.expire(func() { dto.WriteErrorResponse(w, r, ctx.Err()) })
			}
		})
	}
}

// deadlineWriter forwards to w until expire is called. The handler gets
// its own header map, copied to w when the response starts, so the timeout
// path never shares a map with the handler goroutine.
type deadlineWriter struct {
	w       http.ResponseWriter
	header  http.Header
	mu      sync.Mutex
	started bool
	expired bool
}

func (dw *deadlineWriter) Header() http.Header {
	if dw.header == nil {
		dw.header = make(http.Header)
	}
	return dw.header
}

// start must be called with dw.mu held.
func (dw *deadlineWriter) start() {
	dw.started = true
	maps.Copy(dw.w.Header(), dw.header)
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired || dw.started {
		return
	}
	dw.start()
	dw.w.WriteHeader(code)
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !dw.started {
		dw.start()
	}
	return dw.w.Write(b)
}

// expire stops forwarding and, when nothing was sent yet, runs
// writeTimeout against the underlying writer.
func (dw *deadlineWriter) expire(writeTimeout func()) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dw.expired = true
	if !dw.started {
		writeTimeout()
	}
}
