package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
	)(statusHandler(http.StatusCreated))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/boards", http.NoBody)
	req.Header.Set("X-Request-ID", "req-abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"request_id=req-abc",
		"correlation_id=req-abc",
		"status=201",
		"method=POST",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_RouteTemplateUnderChi(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/api/v1/boards/{boardId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/boards/b-7", http.NoBody))

	out := buf.String()
	if !strings.Contains(out, "route=/api/v1/boards/{boardId}") {
		t.Errorf("log output missing route template:\n%s", out)
	}
	if strings.Contains(out, "route=/api/v1/boards/b-7") {
		t.Errorf("route should not carry the raw id:\n%s", out)
	}
}

func TestLogging_ServerErrorAtWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(statusHandler(http.StatusBadGateway))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	completed := ""
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.Contains(line, "request completed") {
			completed = line
		}
	}
	if !strings.Contains(completed, "level=WARN") {
		t.Errorf("completion line = %q, want level=WARN", completed)
	}
}

func TestLogging_RedactsSensitiveHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Apikey", "anon-key")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "secret-token") || strings.Contains(out, "anon-key") {
		t.Errorf("log output leaked a credential:\n%s", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("log output missing redaction marker:\n%s", out)
	}
}

func TestLogging_StoresLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("from handler")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(middleware.WithRequestID(req.Context(), "req-ctx")))

	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.Contains(line, "from handler") {
			if !strings.Contains(line, "request_id=req-ctx") {
				t.Errorf("handler log line = %q, want request_id", line)
			}
			return
		}
	}
	t.Errorf("handler log line not found:\n%s", buf.String())
}
