package google

import (
	"errors"

	ai "llmrelay"

	"google.golang.org/genai"
)

// WrapError converts a Google GenAI SDK failure into a provider error the
// classifier understands. The GenAI SDK does not expose response headers,
// so rate-limit wait hints ride in the error message where the free-text
// rules pick them up. Non-API errors pass through untouched.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	return &ai.ProviderError{
		Message:    apiErr.Message,
		StatusCode: apiErr.Code,
		Cause:      err,
	}
}
