package openai

import (
	ai "llmrelay"

	"github.com/openai/openai-go"
)

// Descriptors converts an already-fetched OpenAI model listing into a
// catalog snapshot. Identifiers gain the "openai/" namespace so they are
// canonical.
func Descriptors(models []openai.Model) []ai.ModelDescriptor {
	out := make([]ai.ModelDescriptor, 0, len(models))
	for _, m := range models {
		out = append(out, ai.ModelDescriptor{
			ID:          ai.ModelID("openai/" + m.ID),
			DisplayName: m.ID,
			Provider:    ai.ProviderOpenAI,
		})
	}
	return out
}
