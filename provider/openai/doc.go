// Package openai translates OpenAI SDK failures and model listings into
// the module's provider-neutral types. It performs no network I/O of its
// own; callers hold the SDK responses.
package openai
