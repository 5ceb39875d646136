// Package retry provides classification-aware retry logic with exponential
// backoff for LLM provider calls.
//
// Failures are classified on every attempt: rate limits honor the
// provider's wait hint bounded by MaxDelay, transient failures back off
// exponentially, and model or fatal failures surface immediately without
// further attempts.
package retry

import (
	"context"

	"llmrelay/internal/retry"
)

// Config holds retry configuration parameters.
type Config = retry.Config

// ExhaustedError is the terminal error returned when every attempt failed
// with a retryable error.
type ExhaustedError = retry.ExhaustedError

// Event represents an observable occurrence during retry execution.
type Event = retry.Event

// EventType identifies the kind of event occurring during retry execution.
type EventType = retry.EventType

// Retry event type constants.
const (
	EventAttemptStart  = retry.EventAttemptStart
	EventAttemptFailed = retry.EventAttemptFailed
	EventRetrying      = retry.EventRetrying
	EventSuccess       = retry.EventSuccess
	EventExhausted     = retry.EventExhausted
)

// DefaultConfig returns the default retry configuration.
//   - 3 max attempts
//   - 1 second initial delay
//   - 30 second max delay
//   - 2x exponential multiplier
func DefaultConfig() Config {
	return retry.DefaultConfig()
}

// Disabled returns a configuration that disables retries (single attempt).
func Disabled() Config {
	return retry.Disabled()
}

// Do executes the given function with retry logic. It respects context
// cancellation during backoff waits. Returns the result on success, the
// classified error on a non-retryable failure, or an *ExhaustedError when
// attempts run out.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	return retry.Do(ctx, cfg, fn)
}

// DoWithEvents is like Do but emits events for observability. Events are
// sent non-blocking; if the channel is full, events are dropped.
func DoWithEvents[T any](ctx context.Context, cfg Config, events chan<- Event, fn func() (T, error)) (T, error) {
	return retry.DoWithEvents(ctx, cfg, events, fn)
}

// IsExhausted reports whether err is a retry exhaustion.
func IsExhausted(err error) bool {
	return retry.IsExhausted(err)
}
