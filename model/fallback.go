package model

import (
	ai "llmrelay"
)

// Fallback picks a replacement for a model that failed. Candidates from
// the same provider are preferred; any other catalog entry comes second.
// Returns false when the catalog offers no usable replacement.
func Fallback(failed string, catalog []ai.ModelDescriptor) (ai.ModelID, bool) {
	if len(catalog) == 0 {
		return "", false
	}

	normalized, _ := Normalize(failed)
	provider := ProviderOf(normalized)

	for _, d := range catalog {
		if d.Provider == provider && d.ID != normalized {
			return d.ID, true
		}
	}
	for _, d := range catalog {
		if d.ID != normalized {
			return d.ID, true
		}
	}
	return "", false
}
