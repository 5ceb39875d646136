// Package model normalizes model names, validates them against provider
// catalog snapshots, and selects fallback models.
//
// Model identifiers are canonical strings: bare names belong to the default
// provider ("gemini-2.5-flash"), other providers carry a namespace prefix
// ("groq/llama-3.3-70b-versatile"). [Normalize] resolves deprecated aliases,
// strips "-latest" suffixes, and qualifies bare names that belong to a
// non-default provider.
//
// Catalogs are supplied by the caller as already-fetched snapshots; this
// package never performs I/O. When no catalog is available, [Validate]
// fails open so the system is never blocked by catalog unavailability.
package model
