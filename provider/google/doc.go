// Package google translates Google GenAI SDK failures and model listings
// into the module's provider-neutral types.
package google
