// Package client orchestrates resilient LLM provider invocations.
//
// A [Client] ties together the pieces the rest of the module provides:
// model name normalization and catalog validation, classification-aware
// retries, and same-provider fallback selection when the requested model is
// unusable.
//
// Create a client once at process start with an explicit configuration:
//
//	c := client.New(client.Config{
//	    Catalog: catalog, // already-fetched snapshot
//	    Events:  events,
//	})
//
//	answer, err := client.Invoke(ctx, c, "gemini-1.5-flash-latest",
//	    func(m ai.ModelID) (string, error) {
//	        return callProvider(ctx, m)
//	    })
//
// The operation is invoked fresh on each attempt and must be safe to
// repeat. On success Invoke returns the operation's result; on failure it
// returns a single terminal error: the classified provider error for
// non-retryable failures, or a *retry.ExhaustedError embedding the attempt
// count and the last failure.
//
// All classification and retry decisions are observable through the Events
// channel (see [LogEvents] for a structured-logging sink) but never feed
// back into the decisions themselves.
package client
