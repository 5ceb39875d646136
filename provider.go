package llmrelay

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderGoogle    Provider = "google"
	ProviderGroq      Provider = "groq"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// DefaultProvider is the provider assumed for bare, unprefixed model names.
const DefaultProvider = ProviderGoogle
