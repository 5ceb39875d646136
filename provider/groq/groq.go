// Package groq translates Groq API failures and model listings into the
// module's provider-neutral types. Groq speaks the OpenAI wire protocol,
// so the error shapes come from the OpenAI SDK pointed at Groq's base URL.
package groq

import (
	ai "llmrelay"

	"github.com/openai/openai-go"

	openaiadapter "llmrelay/provider/openai"
)

// BaseURL is Groq's OpenAI-compatible endpoint.
const BaseURL = "https://api.groq.com/openai/v1"

// WrapError converts a Groq API failure into a provider error the
// classifier understands.
func WrapError(err error) error {
	return openaiadapter.WrapError(err)
}

// Descriptors converts an already-fetched Groq model listing into a
// catalog snapshot under the "groq/" namespace.
func Descriptors(models []openai.Model) []ai.ModelDescriptor {
	out := make([]ai.ModelDescriptor, 0, len(models))
	for _, m := range models {
		out = append(out, ai.ModelDescriptor{
			ID:          ai.ModelID("groq/" + m.ID),
			DisplayName: m.ID,
			Provider:    ai.ProviderGroq,
		})
	}
	return out
}
