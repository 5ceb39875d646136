package google

import (
	"strings"

	ai "llmrelay"

	"google.golang.org/genai"
)

// Descriptors converts an already-fetched Gemini model listing into a
// catalog snapshot. The API reports resource names like
// "models/gemini-2.5-flash"; the canonical form is the bare name, since
// Google is the default provider.
func Descriptors(models []*genai.Model) []ai.ModelDescriptor {
	out := make([]ai.ModelDescriptor, 0, len(models))
	for _, m := range models {
		if m == nil {
			continue
		}
		id := strings.TrimPrefix(m.Name, "models/")
		out = append(out, ai.ModelDescriptor{
			ID:          ai.ModelID(id),
			DisplayName: m.DisplayName,
			Provider:    ai.ProviderGoogle,
		})
	}
	return out
}
