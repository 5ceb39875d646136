// Package llmrelay provides a resilient invocation layer for LLM providers.
//
// The library classifies provider failures into a fixed taxonomy, retries
// transient failures with exponential backoff that honors provider wait
// hints, normalizes model identifiers to a canonical form, validates them
// against a caller-supplied catalog snapshot, and selects a same-provider
// fallback model when the requested one is unusable.
//
// # Error Taxonomy
//
// Provider failures classify into one of four categories:
//
//   - [CategoryRateLimited]: throttled; retryable, bounded by the provider's
//     wait hint when one is present
//   - [CategoryModelUnavailable]: the model is missing or lacks a required
//     capability; never retried, callers should pick a fallback
//   - [CategoryTransient]: temporary network or server failure; retryable
//     with generic backoff
//   - [CategoryFatal]: unrecoverable; surfaced immediately
//
// Classification is deterministic and driven by an ordered rule table, so
// rate-limit vocabulary always wins over model-error vocabulary, and
// model-error vocabulary wins over generic transient vocabulary.
//
// # Basic Usage
//
// Wrap a provider call with retries:
//
//	result, err := retry.Do(ctx, retry.DefaultConfig(), func() (string, error) {
//	    return callProvider(ctx, "gemini-2.5-flash")
//	})
//
// Validate a model against a catalog snapshot and pick a fallback:
//
//	res := model.Validate("gemini-1.5-flash-latest", catalog)
//	if !res.Valid {
//	    if fb, ok := model.Fallback(res.Original, catalog); ok {
//	        // retry the flow with fb
//	    }
//	}
//
// # Packages
//
//   - [llmrelay/model]: model name normalization, catalog validation, and
//     fallback selection
//   - [llmrelay/retry]: retry logic with exponential backoff
//   - [llmrelay/client]: orchestration tying validation, retry, and
//     fallback together, with observable events
//   - llmrelay/provider/...: adapters translating provider SDK failures and
//     model listings into this package's types
package llmrelay
