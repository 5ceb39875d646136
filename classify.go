package llmrelay

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Classifier maps a provider failure to a Classification.
type Classifier func(*ProviderError) Classification

// Rule associates match conditions with an error category. Rules are
// evaluated in order and the first match wins, so rate-limit vocabulary
// takes precedence over model-error vocabulary, which takes precedence
// over generic transient vocabulary.
type Rule struct {
	// Category assigned when the rule matches.
	Category ErrorCategory

	// Statuses are HTTP status codes that match this rule.
	Statuses []int

	// Substrings are lowercase fragments matched against the error's
	// message and details.
	Substrings []string
}

// defaultRules is the built-in classification table. Kept as data so new
// provider error vocabularies can be added without touching control flow.
var defaultRules = []Rule{
	{
		Category: CategoryRateLimited,
		Statuses: []int{429},
		Substrings: []string{
			"quota exceeded",
			"rate limit",
			"too many requests",
			"429",
			"please retry in",
			"resource_exhausted", // Gemini free-tier limit
		},
	},
	{
		Category: CategoryModelUnavailable,
		Statuses: []int{404},
		Substrings: []string{
			"not found",
			"is not found",
			"not supported",
			"json_schema",
			"does not support response format",
			"response format",
		},
	},
	{
		Category: CategoryTransient,
		Statuses: []int{502, 503, 504},
		Substrings: []string{
			"timeout",
			"network",
			"econnreset",
			"etimedout",
			"eai_again",
			"temporary",
			"503",
			"502",
			"504",
		},
	},
}

// retryInPattern matches provider wait hints like "Please retry in 7.66s".
var retryInPattern = regexp.MustCompile(`(?i)retry in\s*([0-9]+(?:\.[0-9]+)?)s`)

// Classify categorizes a provider failure using the built-in rule table.
// Classification is deterministic: the same error always yields the same
// category, and retry decisions never feed back into it.
func Classify(e *ProviderError) Classification {
	if e == nil {
		return Classification{Category: CategoryFatal}
	}

	text := strings.ToLower(e.Message + " " + e.Details)

	for _, rule := range defaultRules {
		if !rule.matches(e.StatusCode, text) {
			continue
		}
		c := Classification{Category: rule.Category}
		if rule.Category == CategoryRateLimited {
			c.RetryAfter = retryAfterHint(e.Message, e.Details)
		}
		return c
	}

	return Classification{Category: CategoryFatal}
}

// ClassifyError classifies an arbitrary error. Errors carrying an explicit
// classification are honored first; everything else goes through the
// free-text rule table.
func ClassifyError(err error) Classification {
	if err == nil {
		return Classification{Category: CategoryFatal}
	}
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Classification()
	}
	return Classify(AsProviderError(err))
}

func (r Rule) matches(status int, text string) bool {
	for _, s := range r.Statuses {
		if status == s {
			return true
		}
	}
	for _, sub := range r.Substrings {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// retryAfterHint extracts a wait hint from the message, falling back to the
// details. Returns 0 when no hint is present. This is a best-effort match
// against free-text provider output, not a contract.
func retryAfterHint(message, details string) time.Duration {
	for _, s := range []string{message, details} {
		m := retryInPattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		seconds, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return time.Duration(seconds * float64(time.Second))
	}
	return 0
}
