package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	ai "llmrelay"
	"llmrelay/internal/retry"
	"llmrelay/model"

	"github.com/google/uuid"
)

// Config holds configuration for creating a client. It is constructed once
// at process start and passed in explicitly; the client reads no ambient
// globals.
type Config struct {
	// Catalog is an already-fetched model catalog snapshot used for
	// validation and fallback selection. An empty catalog disables
	// validation (fail open) and fallback.
	Catalog []ai.ModelDescriptor

	// RetryConfig configures retry behavior. If nil, defaults are used
	// (3 attempts, 1s initial delay, 30s max delay, 2x multiplier).
	RetryConfig *retry.Config

	// Classify overrides the built-in failure classification rules.
	Classify ai.Classifier

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are
	// dropped.
	Events chan<- Event
}

// ModelValidationError is returned when a requested model fails catalog
// validation before any provider call is made.
type ModelValidationError struct {
	Result ai.ValidationResult
}

func (e *ModelValidationError) Error() string {
	if e.Result.Diagnostic != "" {
		return fmt.Sprintf("invalid model %q: %s", e.Result.Original, e.Result.Diagnostic)
	}
	return fmt.Sprintf("invalid model %q", e.Result.Original)
}

// Client orchestrates model validation, retries, and fallback selection
// around caller-supplied provider operations. A Client is safe for
// concurrent use; independent invocations share only its read-only
// configuration.
type Client struct {
	catalog     []ai.ModelDescriptor
	retryConfig retry.Config
	events      chan<- Event
}

// New creates a client with the given configuration.
func New(cfg Config) *Client {
	retryConfig := retry.DefaultConfig()
	if cfg.RetryConfig != nil {
		retryConfig = *cfg.RetryConfig
	}
	if cfg.Classify != nil {
		retryConfig.Classify = cfg.Classify
	}

	return &Client{
		catalog:     cfg.Catalog,
		retryConfig: retryConfig,
		events:      cfg.Events,
	}
}

// Validate normalizes a raw model name and checks it against the client's
// catalog snapshot. With an empty catalog the result is valid with a
// diagnostic noting validation was skipped.
func (c *Client) Validate(raw string) ai.ValidationResult {
	return model.Validate(raw, c.catalog)
}

// Fallback picks a replacement for a failed model from the client's
// catalog, preferring the same provider.
func (c *Client) Fallback(failed string) (ai.ModelID, bool) {
	return model.Fallback(failed, c.catalog)
}

// classification resolves an error with the client's configured classifier,
// honoring explicit categorization from provider adapters first.
func (c *Client) classification(err error) ai.Classification {
	var ce ai.CategorizedError
	if errors.As(err, &ce) {
		return ce.Classification()
	}
	classify := c.retryConfig.Classify
	if classify == nil {
		classify = ai.Classify
	}
	return classify(ai.AsProviderError(err))
}

// Operation is a unit of work against a provider, invoked fresh on each
// attempt with the model to use. It must be safe to invoke repeatedly
// with no partial-state carryover; per-attempt timeouts are its own
// responsibility.
type Operation[T any] func(m ai.ModelID) (T, error)

// Invoke validates the model, runs the operation through the retry
// executor, and when the model itself is unusable selects a fallback from
// the catalog and restarts the flow once with the replacement.
func Invoke[T any](ctx context.Context, c *Client, rawModel string, op Operation[T]) (T, error) {
	var zero T

	res := c.Validate(rawModel)
	emit(c.events, Event{
		Type:       EventValidation,
		Model:      res.Normalized,
		Diagnostic: res.Diagnostic,
	})
	if !res.Valid {
		return zero, &ModelValidationError{Result: res}
	}

	id := uuid.NewString()

	result, err := invokeOnce(ctx, c, id, res.Normalized, op)
	if err == nil {
		return result, nil
	}

	if c.classification(err).Category != ai.CategoryModelUnavailable {
		return zero, err
	}

	fb, ok := c.Fallback(string(res.Normalized))
	if !ok {
		return zero, err
	}

	emit(c.events, Event{
		Type:          EventFallback,
		InvocationID:  id,
		Model:         res.Normalized,
		FallbackModel: fb,
		Error:         err,
	})

	return invokeOnce(ctx, c, id, fb, op)
}

// invokeOnce runs one full retry loop for a single model.
func invokeOnce[T any](ctx context.Context, c *Client, id string, m ai.ModelID, op Operation[T]) (T, error) {
	start := time.Now()
	emit(c.events, Event{
		Type:         EventInvokeStart,
		InvocationID: id,
		Model:        m,
	})

	var retryEvents chan retry.Event
	done := make(chan struct{})
	if c.events != nil {
		retryEvents = make(chan retry.Event, 10)
		go c.forwardRetryEvents(retryEvents, id, m, done)
	} else {
		close(done)
	}

	result, err := retry.DoWithEvents(ctx, c.retryConfig, retryEvents, func() (T, error) {
		return op(m)
	})

	if retryEvents != nil {
		close(retryEvents)
		<-done
	}

	if err != nil {
		emit(c.events, Event{
			Type:         EventInvokeError,
			InvocationID: id,
			Model:        m,
			Duration:     time.Since(start),
			Error:        err,
		})
		var zero T
		return zero, err
	}

	emit(c.events, Event{
		Type:         EventInvokeComplete,
		InvocationID: id,
		Model:        m,
		Duration:     time.Since(start),
	})
	return result, nil
}

// forwardRetryEvents reads from a retry events channel and forwards events
// to the client's event channel as EventRetry events.
func (c *Client) forwardRetryEvents(retryEvents <-chan retry.Event, id string, m ai.ModelID, done chan<- struct{}) {
	defer close(done)
	for re := range retryEvents {
		emit(c.events, Event{
			Type:         EventRetry,
			InvocationID: id,
			Model:        m,
			RetryEvent:   &re,
		})
	}
}
