package openai

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	ai "llmrelay"

	"github.com/openai/openai-go"
)

// WrapError converts an OpenAI SDK failure into a provider error the
// classifier understands. Rate limits with a Retry-After header carry an
// explicit classification so the wait hint survives without free-text
// parsing. Non-API errors (network failures and the like) pass through
// untouched for the text heuristics.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	pe := &ai.ProviderError{
		Message:    err.Error(),
		StatusCode: apiErr.StatusCode,
		Cause:      err,
	}

	if apiErr.StatusCode == http.StatusTooManyRequests {
		if hint := parseRetryAfter(apiErr.Response); hint > 0 {
			return &ai.ClassifiedError{
				Err: pe,
				Class: ai.Classification{
					Category:   ai.CategoryRateLimited,
					RetryAfter: hint,
				},
			}
		}
	}

	return pe
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	// Try parsing as seconds (most common)
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(header); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}
