package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
	defer func() { _ = shutdown(context.Background()) }()

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordToolCall("get_championships", time.Millisecond, OutcomeOK)
	rec.RecordToolCall("get_team_record", time.Millisecond, OutcomeFallback)
	rec.RecordToolCall("get_team_record", time.Millisecond, OutcomeRejected)
	rec.RecordAssistantTurn(time.Millisecond, 2, errors.New("boom"))
	rec.RecordProviderAttempt("openai", time.Millisecond, nil)
	rec.RecordRateLimit("openai", time.Second)

	if got := rec.Tool("get_team_record").Fallbacks; got != 1 {
		t.Fatalf("expected in-memory stats alongside otel, got %d", got)
	}
}

func TestSetupPropagatesPrometheusError(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from prometheus factory")
	}
}

func TestSetupPropagatesOTLPError(t *testing.T) {
	orig := otlpReaderFactory
	defer func() { otlpReaderFactory = orig }()
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("dial failure")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	if err == nil {
		t.Fatalf("expected error from otlp factory")
	}
}
