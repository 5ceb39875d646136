package client

import (
	"time"

	ai "llmrelay"
	"llmrelay/internal/retry"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventValidation fires after a model name is validated against the
	// catalog snapshot.
	EventValidation EventType = "validation"

	// EventInvokeStart fires before an invocation's retry loop begins.
	EventInvokeStart EventType = "invoke_start"

	// EventInvokeComplete fires when an invocation succeeds.
	EventInvokeComplete EventType = "invoke_complete"

	// EventInvokeError fires when an invocation fails terminally.
	EventInvokeError EventType = "invoke_error"

	// EventFallback fires when a fallback model replaces an unusable one.
	EventFallback EventType = "fallback"

	// EventRetry fires when a retry event occurs (forwarded from the
	// retry executor).
	EventRetry EventType = "retry"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// InvocationID correlates all events of one Invoke call.
	InvocationID string

	// Model is the canonical model in use.
	Model ai.ModelID

	// FallbackModel is the replacement model (for EventFallback).
	FallbackModel ai.ModelID

	// Diagnostic carries the validation diagnostic (for EventValidation).
	Diagnostic string

	// Duration is the elapsed time for completed invocations.
	Duration time.Duration

	// Error contains the error for EventInvokeError and EventFallback.
	Error error

	// RetryEvent contains the underlying retry event for EventRetry.
	RetryEvent *retry.Event

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
