package retry

import (
	"context"
	"testing"
	"time"

	ai "llmrelay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoSuccess(t *testing.T) {
	callCount := 0

	result, err := Do(context.Background(), testConfig(), func() (string, error) {
		callCount++
		return "success", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 1, callCount)
}

func TestDoRetriesTransientThenSucceeds(t *testing.T) {
	callCount := 0
	transientErr := &ai.ProviderError{Message: "request timeout"}

	result, err := Do(context.Background(), testConfig(), func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", transientErr
		}
		return "success", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 3, callCount)
}

func TestDoModelUnavailableNotRetried(t *testing.T) {
	callCount := 0
	modelErr := &ai.ProviderError{Message: "model bogus-model is not found"}

	_, err := Do(context.Background(), testConfig(), func() (string, error) {
		callCount++
		return "", modelErr
	})

	assert.Equal(t, modelErr, err)
	assert.Equal(t, 1, callCount)
}

func TestDoFatalNotRetried(t *testing.T) {
	callCount := 0
	fatalErr := &ai.ProviderError{Message: "invalid API key", StatusCode: 401}

	_, err := Do(context.Background(), testConfig(), func() (string, error) {
		callCount++
		return "", fatalErr
	})

	assert.Equal(t, fatalErr, err)
	assert.Equal(t, 1, callCount)
}

func TestDoExhaustsAttempts(t *testing.T) {
	callCount := 0
	transientErr := &ai.ProviderError{Message: "upstream returned 503", Details: "try later"}

	_, err := Do(context.Background(), testConfig(), func() (string, error) {
		callCount++
		return "", transientErr
	})

	assert.Equal(t, 3, callCount)
	require.True(t, IsExhausted(err))

	var ee *ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.Attempts)
	assert.Equal(t, ai.CategoryTransient, ee.Category)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Contains(t, err.Error(), "upstream returned 503")
	assert.Contains(t, err.Error(), "try later")
	assert.ErrorIs(t, err, transientErr)
}

func TestDoBackoffGrowsAndStaysBounded(t *testing.T) {
	cfg := Config{
		MaxAttempts:  3,
		InitialDelay: 20 * time.Millisecond,
		MaxDelay:     200 * time.Millisecond,
		Multiplier:   2.0,
	}

	callTimes := make([]time.Time, 0, 3)
	_, err := Do(context.Background(), cfg, func() (string, error) {
		callTimes = append(callTimes, time.Now())
		return "", &ai.ProviderError{Message: "timeout"}
	})

	assert.True(t, IsExhausted(err))
	require.Len(t, callTimes, 3)

	first := callTimes[1].Sub(callTimes[0])
	second := callTimes[2].Sub(callTimes[1])

	// delay grows 20ms -> 40ms -> 80ms, so the waits are 40ms then 80ms
	assert.GreaterOrEqual(t, first, 35*time.Millisecond)
	assert.GreaterOrEqual(t, second, first)
	assert.LessOrEqual(t, second, 200*time.Millisecond+50*time.Millisecond)
}

func TestDoHonorsRateLimitHint(t *testing.T) {
	cfg := Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2.0,
	}

	callTimes := make([]time.Time, 0, 2)
	_, err := Do(context.Background(), cfg, func() (string, error) {
		callTimes = append(callTimes, time.Now())
		if len(callTimes) == 1 {
			return "", &ai.ProviderError{Message: "rate limit reached, please retry in 0.05s"}
		}
		return "done", nil
	})

	assert.NoError(t, err)
	require.Len(t, callTimes, 2)

	// The 50ms hint wins over the 2ms exponential default.
	wait := callTimes[1].Sub(callTimes[0])
	assert.GreaterOrEqual(t, wait, 45*time.Millisecond)
}

func TestDoClampsRateLimitHintToMaxDelay(t *testing.T) {
	cfg := Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     30 * time.Millisecond,
		Multiplier:   2.0,
	}

	callTimes := make([]time.Time, 0, 2)
	_, err := Do(context.Background(), cfg, func() (string, error) {
		callTimes = append(callTimes, time.Now())
		if len(callTimes) == 1 {
			return "", &ai.ProviderError{Message: "rate limit reached, please retry in 60s"}
		}
		return "done", nil
	})

	assert.NoError(t, err)
	require.Len(t, callTimes, 2)

	wait := callTimes[1].Sub(callTimes[0])
	assert.Less(t, wait, time.Second)
}

func TestDoRateLimitExhaustionCarriesHint(t *testing.T) {
	cfg := Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}

	_, err := Do(context.Background(), cfg, func() (string, error) {
		return "", &ai.ProviderError{Message: "429 rate limit, please retry in 12s"}
	})

	var ee *ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ai.CategoryRateLimited, ee.Category)
	assert.Equal(t, 12*time.Second, ee.RetryAfter)
	assert.Contains(t, err.Error(), "retry after 12s")
}

func TestDoRespectsContextCancellation(t *testing.T) {
	cfg := Config{
		MaxAttempts:  10,
		InitialDelay: time.Second,
		MaxDelay:     time.Second,
		Multiplier:   1.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, cfg, func() (string, error) {
		callCount++
		return "", &ai.ProviderError{Message: "timeout"}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, callCount)
}

func TestDoWithDisabledRetry(t *testing.T) {
	callCount := 0

	_, err := Do(context.Background(), Disabled(), func() (string, error) {
		callCount++
		return "", &ai.ProviderError{Message: "timeout"}
	})

	assert.True(t, IsExhausted(err))
	assert.Equal(t, 1, callCount)
}

func TestDoCustomClassifier(t *testing.T) {
	// A classifier that treats everything as fatal stops after one attempt.
	cfg := testConfig()
	cfg.Classify = func(*ai.ProviderError) ai.Classification {
		return ai.Classification{Category: ai.CategoryFatal}
	}

	callCount := 0
	_, err := Do(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", &ai.ProviderError{Message: "timeout"}
	})

	assert.Error(t, err)
	assert.False(t, IsExhausted(err))
	assert.Equal(t, 1, callCount)
}

func TestDoHonorsExplicitCategorization(t *testing.T) {
	// Pre-categorized errors bypass the free-text rules entirely.
	err := &categorized{
		msg: "looks like a timeout",
		c:   ai.Classification{Category: ai.CategoryModelUnavailable},
	}

	callCount := 0
	_, got := Do(context.Background(), testConfig(), func() (string, error) {
		callCount++
		return "", err
	})

	assert.Equal(t, err, got)
	assert.Equal(t, 1, callCount)
}

func TestDoWithEventsSequence(t *testing.T) {
	events := make(chan Event, 32)
	callCount := 0

	_, err := DoWithEvents(context.Background(), testConfig(), events, func() (string, error) {
		callCount++
		if callCount < 2 {
			return "", &ai.ProviderError{Message: "timeout"}
		}
		return "ok", nil
	})
	close(events)

	assert.NoError(t, err)

	var types []EventType
	for e := range events {
		types = append(types, e.Type)
		assert.False(t, e.Timestamp.IsZero())
	}
	assert.Equal(t, []EventType{
		EventAttemptStart,
		EventAttemptFailed,
		EventRetrying,
		EventAttemptStart,
		EventSuccess,
	}, types)
}

func TestDoWithEventsExhausted(t *testing.T) {
	events := make(chan Event, 32)

	_, err := DoWithEvents(context.Background(), testConfig(), events, func() (string, error) {
		return "", &ai.ProviderError{Message: "timeout"}
	})
	close(events)

	assert.True(t, IsExhausted(err))

	var last Event
	for e := range events {
		last = e
	}
	assert.Equal(t, EventExhausted, last.Type)
	assert.Equal(t, 3, last.Attempt)
	assert.Equal(t, ai.CategoryTransient, last.Category)
}

type categorized struct {
	msg string
	c   ai.Classification
}

func (e *categorized) Error() string                     { return e.msg }
func (e *categorized) Classification() ai.Classification { return e.c }
