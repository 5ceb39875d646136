package retry

import (
	"math/rand"
	"time"

	ai "llmrelay"
)

// Config holds retry configuration parameters.
type Config struct {
	// MaxAttempts is the maximum number of attempts (default: 3).
	// The initial request counts as attempt 1.
	MaxAttempts int

	// InitialDelay seeds the exponential backoff (default: 1s).
	InitialDelay time.Duration

	// MaxDelay bounds every wait between attempts (default: 30s).
	// Provider wait hints are clamped to it as well.
	MaxDelay time.Duration

	// Multiplier is the exponential backoff factor (default: 2.0).
	Multiplier float64

	// Jitter adds randomness to non-hinted waits (0 disables, 0.1 = 10%).
	// The wait is multiplied by (1 + random(-jitter, +jitter)).
	Jitter float64

	// Classify categorizes provider failures. Nil uses the built-in
	// classification rules.
	Classify ai.Classifier
}

// DefaultConfig returns the default retry configuration.
//   - 3 max attempts
//   - 1 second initial delay
//   - 30 second max delay
//   - 2x exponential multiplier
//   - no jitter
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// Disabled returns a configuration that disables retries (single attempt).
func Disabled() Config {
	return Config{MaxAttempts: 1}
}

// classifier returns the configured classifier or the built-in default.
func (c Config) classifier() ai.Classifier {
	if c.Classify != nil {
		return c.Classify
	}
	return ai.Classify
}

// attempts returns MaxAttempts clamped to at least one attempt.
func (c Config) attempts() int {
	if c.MaxAttempts < 1 {
		return 1
	}
	return c.MaxAttempts
}

// grow advances the exponential backoff state and returns the next wait,
// capped at MaxDelay.
func (c Config) grow(delay time.Duration) time.Duration {
	next := time.Duration(float64(delay) * c.Multiplier)
	if c.MaxDelay > 0 && next > c.MaxDelay {
		next = c.MaxDelay
	}
	if next < 0 {
		next = 0
	}
	return next
}

// jittered applies the configured jitter to a wait, keeping the result
// within [0, MaxDelay].
func (c Config) jittered(wait time.Duration) time.Duration {
	if c.Jitter <= 0 {
		return wait
	}
	factor := 1.0 + (rand.Float64()*2-1)*c.Jitter
	out := time.Duration(float64(wait) * factor)
	if out < 0 {
		out = 0
	}
	if c.MaxDelay > 0 && out > c.MaxDelay {
		out = c.MaxDelay
	}
	return out
}

// clamp bounds a provider wait hint to MaxDelay.
func (c Config) clamp(hint time.Duration) time.Duration {
	if c.MaxDelay > 0 && hint > c.MaxDelay {
		return c.MaxDelay
	}
	return hint
}
