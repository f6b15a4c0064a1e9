package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("openai", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("openai", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("openai"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("openai"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("openai")
	if snap.Calls != 2 || snap.Errors != 1 || snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("openai", 5*time.Second)
	rec.RecordRateLimit("openai", 0)

	if got := rec.RateLimitHits("openai"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.Snapshot("openai").LastRetryAfter; got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksToolOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordToolCall("get_team_record", time.Millisecond, OutcomeOK)
	rec.RecordToolCall("get_team_record", 2*time.Millisecond, OutcomeFallback)
	rec.RecordToolCall("get_team_record", 3*time.Millisecond, OutcomeRejected)

	snap := rec.Tool("get_team_record")
	if snap.Calls != 3 || snap.Fallbacks != 1 || snap.Rejected != 1 {
		t.Fatalf("unexpected tool snapshot %+v", snap)
	}
	if snap.LastLatency != 3*time.Millisecond {
		t.Fatalf("expected last latency 3ms, got %s", snap.LastLatency)
	}
	if got := rec.Tool("unknown"); got != (ToolSnapshot{}) {
		t.Fatalf("expected empty snapshot for unknown tool, got %+v", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordToolCall("x", time.Millisecond, OutcomeOK)
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordAssistantTurn(time.Millisecond, 1, nil)

	if rec.Tool("x").Calls != 0 || rec.ProviderCalls("x") != 0 {
		t.Fatalf("expected zero stats from nil recorder")
	}
}

func TestRecorderConcurrentToolCalls(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec.RecordToolCall("get_championships", time.Microsecond, OutcomeOK)
			}
		}()
	}
	wg.Wait()

	if got := rec.Tool("get_championships").Calls; got != 800 {
		t.Fatalf("expected 800 calls, got %d", got)
	}
}
