package llm

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// retryAfterHint carries the Retry-After of a 429 response from the transport back to
// the provider call that issued the request.
type retryAfterHint struct {
	delay atomic.Int64
}

func (h *retryAfterHint) get() time.Duration {
	if h == nil {
		return 0
	}
	return time.Duration(h.delay.Load())
}

type retryAfterKey struct{}

func withRetryAfterHint(ctx context.Context) (context.Context, *retryAfterHint) {
	hint := &retryAfterHint{}
	return context.WithValue(ctx, retryAfterKey{}, hint), hint
}

// retryAfterTransport records Retry-After on 429 responses. The body is left intact
// for go-openai to decode.
type retryAfterTransport struct {
	next http.RoundTripper
	now  func() time.Time
}

func newRetryAfterTransport(next http.RoundTripper) *retryAfterTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &retryAfterTransport{next: next, now: time.Now}
}

func (t *retryAfterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusTooManyRequests {
		return resp, err
	}
	if hint, ok := req.Context().Value(retryAfterKey{}).(*retryAfterHint); ok {
		hint.delay.Store(int64(parseRetryAfter(resp.Header.Get("Retry-After"), t.now())))
	}
	return resp, nil
}

// parseRetryAfter accepts delta-seconds or an HTTP date. Unparseable or past values yield 0.
func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
