package llmrelay

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies provider failures by how they should be handled.
type ErrorCategory string

const (
	// CategoryRateLimited indicates the provider throttled the request.
	// Retryable, optionally with a provider-supplied wait hint.
	CategoryRateLimited ErrorCategory = "rate_limited"

	// CategoryModelUnavailable indicates the requested model is missing or
	// lacks a required capability. Never retried; callers should obtain a
	// fallback model instead.
	CategoryModelUnavailable ErrorCategory = "model_unavailable"

	// CategoryTransient indicates a temporary failure such as a network
	// error or server overload. Retryable with generic backoff.
	CategoryTransient ErrorCategory = "transient"

	// CategoryFatal indicates an unrecoverable failure that is surfaced
	// immediately. Examples: invalid API key, malformed request.
	CategoryFatal ErrorCategory = "fatal"
)

// Retryable returns true if errors in this category can be retried.
func (c ErrorCategory) Retryable() bool {
	return c == CategoryRateLimited || c == CategoryTransient
}

// Classification is the outcome of classifying a provider failure.
type Classification struct {
	// Category is the failure category.
	Category ErrorCategory

	// RetryAfter is the provider-supplied wait hint for rate limits,
	// or 0 when no hint was present.
	RetryAfter time.Duration
}

// CategorizedError is an error that carries an explicit classification.
// Provider adapters produce these so the classifier can skip text heuristics.
type CategorizedError interface {
	error
	Classification() Classification
}

// ClassifiedError pairs a provider error with an explicit classification.
// Provider adapters use it when structured metadata (an HTTP Retry-After
// header, a typed SDK error) already settles the category, so the
// free-text rules never run.
type ClassifiedError struct {
	Err   *ProviderError
	Class Classification
}

// Error returns the underlying provider error's message.
func (e *ClassifiedError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying provider error.
func (e *ClassifiedError) Unwrap() error { return e.Err }

// Classification returns the explicit classification.
func (e *ClassifiedError) Classification() Classification { return e.Class }

// ProviderError is a failure returned by an LLM provider.
type ProviderError struct {
	// Message is the provider's error message.
	Message string

	// Details holds any secondary error text (response body, nested error).
	Details string

	// StatusCode is the HTTP status code, 0 if not applicable.
	StatusCode int

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message.
func (e *ProviderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a ProviderError with the given message.
func NewProviderError(message string, statusCode int, cause error) *ProviderError {
	return &ProviderError{
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// AsProviderError extracts a *ProviderError from err's chain. If none is
// present the error is wrapped as-is so free-text classification still runs.
func AsProviderError(err error) *ProviderError {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProviderError{Message: err.Error(), Cause: err}
}

// IsRetryable returns true if the error classifies as retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).Category.Retryable()
}
