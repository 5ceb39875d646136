// Package anthropic translates Anthropic SDK failures and model listings
// into the module's provider-neutral types.
package anthropic

import (
	"errors"

	ai "llmrelay"

	"github.com/anthropics/anthropic-sdk-go"
)

// WrapError converts an Anthropic SDK failure into a provider error the
// classifier understands. Non-API errors pass through untouched.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	return &ai.ProviderError{
		Message:    err.Error(),
		StatusCode: apiErr.StatusCode,
		Cause:      err,
	}
}

// Descriptors converts an already-fetched Anthropic model listing into a
// catalog snapshot under the "anthropic/" namespace.
func Descriptors(models []anthropic.ModelInfo) []ai.ModelDescriptor {
	out := make([]ai.ModelDescriptor, 0, len(models))
	for _, m := range models {
		out = append(out, ai.ModelDescriptor{
			ID:          ai.ModelID("anthropic/" + m.ID),
			DisplayName: m.DisplayName,
			Provider:    ai.ProviderAnthropic,
		})
	}
	return out
}
