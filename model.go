package llmrelay

// ModelID is a canonical, provider-qualified model identifier, e.g.
// "groq/llama-3.3-70b-versatile" or "gemini-2.5-flash" (default provider
// names carry no prefix). Equality is exact string match after
// normalization.
type ModelID string

// String returns the identifier.
func (m ModelID) String() string { return string(m) }

// ModelDescriptor describes one model in a provider catalog snapshot.
// Descriptors are supplied by the caller from an already-fetched listing
// and are immutable per request.
type ModelDescriptor struct {
	// ID is the canonical model identifier.
	ID ModelID

	// DisplayName is the human-readable model name.
	DisplayName string

	// Provider is the provider that serves this model.
	Provider Provider
}

// ValidationResult reports whether a model name resolves to a model in the
// supplied catalog.
type ValidationResult struct {
	// Valid is true when the model may be used.
	Valid bool

	// Normalized is the canonical form of the requested name.
	Normalized ModelID

	// Original is the name as the caller supplied it.
	Original string

	// Diagnostic explains an invalid result, or notes that validation was
	// skipped when no catalog was available.
	Diagnostic string
}
