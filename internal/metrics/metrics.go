package metrics

import (
	"sync"
	"time"
)

// ToolOutcome classifies a single tool invocation.
type ToolOutcome string

const (
	// OutcomeOK means the tool produced its normal answer.
	OutcomeOK ToolOutcome = "ok"
	// OutcomeFallback means the tool answered with its "not available" sentence.
	OutcomeFallback ToolOutcome = "fallback"
	// OutcomeRejected means the call never reached the tool (unknown name, bad arguments).
	OutcomeRejected ToolOutcome = "rejected"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type toolStats struct {
	calls       int
	rejected    int
	fallbacks   int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about tool and provider calls and
// forwards them to OpenTelemetry instruments when configured. A nil Recorder is a no-op.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	tools     map[string]*toolStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		tools:     make(map[string]*toolStats),
		otel:      otel,
	}
}

// RecordToolCall counts a tool invocation and its outcome.
func (r *Recorder) RecordToolCall(tool string, duration time.Duration, outcome ToolOutcome) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.tools[tool]
	if !ok {
		stats = &toolStats{}
		r.tools[tool] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	switch outcome {
	case OutcomeRejected:
		stats.rejected++
	case OutcomeFallback:
		stats.fallbacks++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordToolCall(tool, duration, outcome)
	}
}

// ToolSnapshot is a copy of the stats recorded for a tool.
type ToolSnapshot struct {
	Calls       int
	Rejected    int
	Fallbacks   int
	LastLatency time.Duration
}

// Tool returns a copy of the current stats for a tool.
func (r *Recorder) Tool(tool string) ToolSnapshot {
	if r == nil {
		return ToolSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tools[tool]
	if !ok || stats == nil {
		return ToolSnapshot{}
	}
	return ToolSnapshot{
		Calls:       stats.calls,
		Rejected:    stats.rejected,
		Fallbacks:   stats.fallbacks,
		LastLatency: stats.lastLatency,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// Snapshot is a copy of the stats recorded for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.providers[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordAssistantTurn tracks one relayed conversation turn and how many tool calls it made.
func (r *Recorder) RecordAssistantTurn(duration time.Duration, toolCalls int, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAssistantTurn(duration, toolCalls, err)
}

// caller holds r.mu.
func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}
