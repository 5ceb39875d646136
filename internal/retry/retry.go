package retry

import (
	"context"
	"time"

	ai "llmrelay"
)

// Do executes the given function with retry logic. Failures are classified
// on every attempt: non-retryable categories surface immediately, rate
// limits honor the provider's wait hint bounded by MaxDelay, and other
// retryable failures back off exponentially. The wait between attempts
// suspends only the calling goroutine and respects context cancellation.
// Returns the result on success, the classified error on a non-retryable
// failure, or an *ExhaustedError when attempts run out.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	return DoWithEvents(ctx, cfg, nil, fn)
}

// DoWithEvents is like Do but emits events for observability. Events are
// sent non-blocking; if the channel is full, events are dropped. Pass nil
// for events to disable event emission (equivalent to Do).
func DoWithEvents[T any](ctx context.Context, cfg Config, events chan<- Event, fn func() (T, error)) (T, error) {
	var zero T

	maxAttempts := cfg.attempts()
	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		emit(events, Event{
			Type:        EventAttemptStart,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
		})

		result, err := fn()
		if err == nil {
			emit(events, Event{
				Type:        EventSuccess,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
			})
			return result, nil
		}

		c := classify(cfg, err)
		emit(events, Event{
			Type:        EventAttemptFailed,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Error:       err,
			Category:    c.Category,
			Retryable:   c.Category.Retryable(),
		})

		if !c.Category.Retryable() {
			return zero, err
		}

		if attempt == maxAttempts {
			emit(events, Event{
				Type:        EventExhausted,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
				Error:       err,
				Category:    c.Category,
			})
			return zero, &ExhaustedError{
				Attempts:   maxAttempts,
				Category:   c.Category,
				RetryAfter: c.RetryAfter,
				Last:       err,
			}
		}

		var wait time.Duration
		if c.Category == ai.CategoryRateLimited && c.RetryAfter > 0 {
			// Provider hint wins over the exponential schedule and does
			// not advance it.
			wait = cfg.clamp(c.RetryAfter)
		} else {
			delay = cfg.grow(delay)
			wait = cfg.jittered(delay)
		}

		emit(events, Event{
			Type:        EventRetrying,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Category:    c.Category,
			Delay:       wait,
		})

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
			// Continue to next attempt
		}
	}
}
