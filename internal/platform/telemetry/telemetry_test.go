package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/kanban-engine/internal/platform/telemetry"
)

// The Init functions install global providers, so these tests are not
// parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
		// unsupported additionally requires ErrUnsupportedExporter.
		unsupported bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp over https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "zipkin", wantErr: true, unsupported: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, "boardd", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitTracer() error = nil, want error")
				}
				if tt.unsupported && !errors.Is(err, telemetry.ErrUnsupportedExporter) {
					t.Errorf("InitTracer() error = %v, want ErrUnsupportedExporter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests; an OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			if len(otel.GetTextMapPropagator().Fields()) == 0 {
				t.Error("global propagator has no fields, want trace context and baggage")
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, "boardd", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitMeter() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestNewMetrics_RecordsEngineInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "boardd")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.ServerRequestTotal.Add(ctx, 1)
	metrics.ServerRequestDuration.Record(ctx, 0.01)
	metrics.ClientRequestTotal.Add(ctx, 1)
	metrics.ClientRequestDuration.Record(ctx, 0.02)
	metrics.MutationTotal.Add(ctx, 1)
	metrics.MutationDuration.Record(ctx, 0.03)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != "boardd" {
			t.Errorf("scope = %q, want boardd", sm.Scope.Name)
		}
		for _, m := range sm.Metrics {
			got[m.Name] = true
		}
	}

	for _, name := range []string{
		"http.server.request.total",
		"http.server.request.duration",
		"http.client.request.total",
		"http.client.request.duration",
		"engine.mutation.total",
		"engine.mutation.duration",
	} {
		if !got[name] {
			t.Errorf("instrument %q not recorded", name)
		}
	}
}
