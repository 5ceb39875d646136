package client

import (
	"log/slog"
)

// LogEvents consumes client events and writes them to a structured logger.
// It is the standard observer sink: run it in its own goroutine and close
// the events channel when done. Logging observes retry decisions but never
// feeds back into them.
func LogEvents(logger *slog.Logger, events <-chan Event) {
	for e := range events {
		attrs := []any{
			slog.String("invocation_id", e.InvocationID),
			slog.String("model", string(e.Model)),
		}

		switch e.Type {
		case EventValidation:
			if e.Diagnostic != "" {
				logger.Warn("model validation", append(attrs, slog.String("diagnostic", e.Diagnostic))...)
			} else {
				logger.Debug("model validation", attrs...)
			}
		case EventInvokeStart:
			logger.Debug("invoke start", attrs...)
		case EventInvokeComplete:
			logger.Info("invoke complete", append(attrs, slog.Duration("duration", e.Duration))...)
		case EventInvokeError:
			logger.Error("invoke failed", append(attrs,
				slog.Duration("duration", e.Duration),
				slog.Any("error", e.Error),
			)...)
		case EventFallback:
			logger.Warn("falling back to replacement model", append(attrs,
				slog.String("fallback_model", string(e.FallbackModel)),
				slog.Any("error", e.Error),
			)...)
		case EventRetry:
			if e.RetryEvent == nil {
				continue
			}
			re := e.RetryEvent
			attrs = append(attrs,
				slog.String("retry_event", string(re.Type)),
				slog.Int("attempt", re.Attempt),
				slog.Int("max_attempts", re.MaxAttempts),
			)
			switch re.Type {
			case RetryEventAttemptFailed:
				logger.Warn("attempt failed", append(attrs,
					slog.String("category", string(re.Category)),
					slog.Bool("retryable", re.Retryable),
					slog.Any("error", re.Error),
				)...)
			case RetryEventRetrying:
				logger.Info("retrying", append(attrs, slog.Duration("delay", re.Delay))...)
			default:
				logger.Debug("retry progress", attrs...)
			}
		}
	}
}
