package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// RateLimitError captures rate limit responses from the completion provider.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// statusCode extracts the HTTP status from go-openai errors, or 0.
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// classify maps 429 responses to RateLimitError and leaves other errors untouched.
// retryAfter is the server's requested delay, 0 when absent.
func classify(provider string, err error, retryAfter time.Duration) error {
	if err == nil {
		return nil
	}
	if status := statusCode(err); status == http.StatusTooManyRequests {
		return &RateLimitError{
			Provider:   provider,
			StatusCode: status,
			RetryAfter: retryAfter,
			Message:    "provider rate limited",
			Err:        err,
		}
	}
	return err
}

// retryable reports whether another attempt could succeed. Client errors other than
// rate limits are permanent.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	status := statusCode(err)
	return status == 0 || status >= http.StatusInternalServerError
}
