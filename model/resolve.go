package model

import (
	"strings"

	ai "llmrelay"
)

// aliases maps deprecated or shorthand model names to their canonical
// identifiers. Alias values are already canonical, so a second
// normalization pass leaves them unchanged.
var aliases = map[string]ai.ModelID{
	// Gemini shorthands
	"gemini-pro":        "gemini-2.5-pro",
	"gemini-flash":      "gemini-2.5-flash",
	"gemini-flash-lite": "gemini-2.5-flash-lite",

	// Retired Groq model names
	"llama3-8b-8192":     "groq/llama-3.1-8b-instant",
	"llama3-70b-8192":    "groq/llama-3.3-70b-versatile",
	"mixtral-8x7b-32768": "groq/llama-3.3-70b-versatile",
}

// namespacePrefixes are the recognized provider namespaces. Bare names
// (no prefix) belong to the default provider.
var namespacePrefixes = map[string]ai.Provider{
	"groq/":      ai.ProviderGroq,
	"openai/":    ai.ProviderOpenAI,
	"anthropic/": ai.ProviderAnthropic,
}

// barePrefix associates a bare-name prefix with the provider whose
// namespace should be prepended.
type barePrefix struct {
	prefix   string
	provider ai.Provider
}

// barePrefixes lists bare-name prefixes that belong to a non-default
// provider. Evaluated in order.
var barePrefixes = []barePrefix{
	{"llama", ai.ProviderGroq},
	{"mixtral", ai.ProviderGroq},
	{"gemma", ai.ProviderGroq},
	{"qwen", ai.ProviderGroq},
	{"deepseek", ai.ProviderGroq},
	{"whisper", ai.ProviderGroq},
	{"gpt-", ai.ProviderOpenAI},
	{"o3", ai.ProviderOpenAI},
	{"o4", ai.ProviderOpenAI},
	{"claude-", ai.ProviderAnthropic},
}

// Normalize resolves a raw model name to its canonical identifier.
// It returns false for blank input. Normalization is a pure function over
// static tables and is idempotent: normalizing a canonical identifier
// returns it unchanged.
func Normalize(raw string) (ai.ModelID, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}

	if id, ok := aliases[name]; ok {
		return id, true
	}

	name = strings.TrimSuffix(name, "-latest")

	// The stripped form may itself be a known alias.
	if id, ok := aliases[name]; ok {
		return id, true
	}

	if !hasNamespace(name) {
		for _, bp := range barePrefixes {
			if strings.HasPrefix(name, bp.prefix) {
				return ai.ModelID(string(bp.provider) + "/" + name), true
			}
		}
	}

	// Assumed to be a default-provider bare name or already canonical.
	return ai.ModelID(name), true
}

// ProviderOf reports which provider serves a canonical model identifier.
// Identifiers without a recognized namespace belong to the default provider.
func ProviderOf(id ai.ModelID) ai.Provider {
	for prefix, provider := range namespacePrefixes {
		if strings.HasPrefix(string(id), prefix) {
			return provider
		}
	}
	return ai.DefaultProvider
}

func hasNamespace(name string) bool {
	for prefix := range namespacePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
