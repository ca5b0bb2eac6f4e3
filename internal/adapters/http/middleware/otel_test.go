package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/kanban-engine/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-engine/internal/platform/telemetry"
)

// setupTracer installs an in-memory tracer provider globally. Tests using it
// must not run in parallel.
func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	return exporter
}

func spanAttr(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestOpenTelemetry_SpanNamedByRoute(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/api/v1/tasks/{taskId}/move", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/tasks/t-1/move", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]

	if want := "HTTP POST /api/v1/tasks/{taskId}/move"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}
	if span.SpanKind != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", span.SpanKind)
	}
	if v, ok := spanAttr(span.Attributes, "http.status_code"); !ok || v.AsInt64() != http.StatusAccepted {
		t.Errorf("http.status_code = %v, want 202", v.AsInt64())
	}
	if v, ok := spanAttr(span.Attributes, "http.route"); !ok || v.AsString() != "/api/v1/tasks/{taskId}/move" {
		t.Errorf("http.route = %q", v.AsString())
	}
	if span.Status.Code == codes.Error {
		t.Error("span status should not be error for 202")
	}
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(statusHandler(http.StatusBadGateway))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name != "HTTP GET /test" {
		t.Errorf("span name = %q, want raw path fallback", spans[0].Name)
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status = %v, want error", spans[0].Status.Code)
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the incoming one", got)
	}
	if got := spans[0].Parent.SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span id = %s, want the incoming one", got)
	}
}

func TestOpenTelemetry_RecordsMetrics(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	handler := middleware.OpenTelemetry(metrics)(statusHandler(http.StatusOK))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}
	if len(rm.ScopeMetrics) == 0 {
		t.Fatal("no metrics recorded")
	}
}
