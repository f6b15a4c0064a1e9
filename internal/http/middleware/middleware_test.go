package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
	"github.com/preston-bernstein/nba-stats-agent/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "client-id" {
			t.Fatalf("expected request id in context, got %q", got)
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, rec, next)
	req := httptest.NewRequest(http.MethodPost, "/tools/get_championships", nil)
	req.Header.Set("X-Request-ID", "client-id")
	rr := testutil.ServeRequest(handler, req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("X-Request-ID"); got != "client-id" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") {
		t.Fatalf("expected completion log, got %q", out)
	}
	if got := rec.Snapshot("http").Calls; got != 0 {
		t.Fatalf("expected no provider metrics recorded, got %d", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, nil, next)
	req := httptest.NewRequest(http.MethodGet, "/tools?foo=bar", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" || got == "bad id with spaces" {
		t.Fatalf("expected generated X-Request-ID header, got %q", got)
	}
}

func TestLoggingMiddlewareNilLoggerUsesDefault(t *testing.T) {
	handler := LoggingMiddleware(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := testutil.Serve(handler, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
	w.Flush()
	if !rr.Flushed {
		t.Fatalf("expected flush to reach the underlying writer")
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/health", want: "/health"},
		{in: "/ready", want: "/ready"},
		{in: "/tools", want: "/tools"},
		{in: "/tools/get_championships", want: "/tools/:name"},
		{in: "/tools/anything-else", want: "/tools/:name"},
		{in: "/chat", want: "/chat"},
		{in: "/chat/greeting", want: "/chat/greeting"},
		{in: "/mcp", want: "/mcp"},
		{in: "/admin/sessions/reset", want: "/admin/sessions/reset"},
		{in: "/random/1234", want: "other"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
	//nolint:staticcheck // nil context is part of the contract
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tools/get_team_record", nil)
		handler.ServeHTTP(rr, req)
	}
}
