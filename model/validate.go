package model

import (
	"fmt"
	"strings"

	ai "llmrelay"
)

// maxListedModels caps how many catalog entries an invalid-model
// diagnostic enumerates.
const maxListedModels = 5

// Validate normalizes a raw model name and checks it against a catalog
// snapshot. An empty catalog fails open: the result is valid with a
// diagnostic noting validation was skipped, so callers are never blocked
// by catalog unavailability.
func Validate(raw string, catalog []ai.ModelDescriptor) ai.ValidationResult {
	normalized, ok := Normalize(raw)
	if !ok {
		return ai.ValidationResult{
			Original:   raw,
			Diagnostic: "model name required",
		}
	}

	if len(catalog) == 0 {
		return ai.ValidationResult{
			Valid:      true,
			Normalized: normalized,
			Original:   raw,
			Diagnostic: "validation skipped: no model catalog available",
		}
	}

	for _, d := range catalog {
		if d.ID == normalized {
			return ai.ValidationResult{
				Valid:      true,
				Normalized: normalized,
				Original:   raw,
			}
		}
	}

	return ai.ValidationResult{
		Normalized: normalized,
		Original:   raw,
		Diagnostic: fmt.Sprintf("model %q not available; known models: %s", normalized, listModels(catalog)),
	}
}

// listModels renders up to maxListedModels catalog ids, with a truncation
// marker when more exist.
func listModels(catalog []ai.ModelDescriptor) string {
	ids := make([]string, 0, maxListedModels)
	for _, d := range catalog {
		if len(ids) == maxListedModels {
			break
		}
		ids = append(ids, string(d.ID))
	}
	listed := strings.Join(ids, ", ")
	if extra := len(catalog) - len(ids); extra > 0 {
		listed += fmt.Sprintf(" (and %d more)", extra)
	}
	return listed
}
