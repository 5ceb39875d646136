package retry

import (
	"errors"
	"fmt"
	"time"

	ai "llmrelay"
)

// ExhaustedError is the terminal error returned when every attempt failed
// with a retryable error. It carries the attempt count and the last
// failure; no partial results leak out.
type ExhaustedError struct {
	// Attempts is how many times the operation was invoked.
	Attempts int

	// Category is the classification of the last failure.
	Category ai.ErrorCategory

	// RetryAfter is the provider wait hint from the last failure, if any.
	RetryAfter time.Duration

	// Last is the last attempt's error.
	Last error
}

// Error returns a composite message embedding the attempt count and the
// last error.
func (e *ExhaustedError) Error() string {
	msg := fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Last)
	if e.Category == ai.CategoryRateLimited && e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (rate limited, retry after %s)", e.RetryAfter)
	}
	return msg
}

// Unwrap returns the last attempt's error.
func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// IsExhausted reports whether err is a retry exhaustion.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}

// classify resolves an attempt error to a Classification, honoring
// explicit categorization from provider adapters before running the
// configured free-text classifier.
func classify(cfg Config, err error) ai.Classification {
	var ce ai.CategorizedError
	if errors.As(err, &ce) {
		return ce.Classification()
	}
	return cfg.classifier()(ai.AsProviderError(err))
}
