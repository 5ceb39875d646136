package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"google.golang.org/genai"

	ai "llmrelay"
	"llmrelay/client"
	"llmrelay/provider/google"
	"llmrelay/retry"
)

// example demonstrates validated, retried model invocations. With
// GOOGLE_API_KEY set it calls the Gemini API; without a key it runs a
// simulated flaky operation so the retry and event flow is still visible.
func main() {
	cfg := LoadConfig()
	ctx := context.Background()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: parseLevel(cfg.LogLevel),
	}))

	events := make(chan client.Event, 64)
	logDone := make(chan struct{})
	go func() {
		client.LogEvents(logger, events)
		close(logDone)
	}()
	drain := func() {
		close(events)
		<-logDone
	}

	c := client.New(client.Config{
		Catalog: catalog(),
		RetryConfig: &retry.Config{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialDelay,
			MaxDelay:     cfg.MaxDelay,
			Multiplier:   2.0,
		},
		Events: events,
	})

	op := simulatedOperation(logger)
	if cfg.GoogleKey != "" {
		gemini, err := geminiOperation(ctx, cfg.GoogleKey)
		if err != nil {
			logger.Error("gemini client init failed", "error", err)
			drain()
			os.Exit(1)
		}
		op = gemini
	}

	result, err := client.Invoke(ctx, c, cfg.Model, op)
	drain()
	if err != nil {
		logger.Error("invocation failed", "model", cfg.Model, "error", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

// catalog returns a static model snapshot. A real application would build
// this from the provider list endpoints via the provider packages.
func catalog() []ai.ModelDescriptor {
	return []ai.ModelDescriptor{
		{ID: "gemini-2.5-pro", DisplayName: "Gemini 2.5 Pro", Provider: ai.ProviderGoogle},
		{ID: "gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", Provider: ai.ProviderGoogle},
		{ID: "gemini-2.5-flash-lite", DisplayName: "Gemini 2.5 Flash Lite", Provider: ai.ProviderGoogle},
		{ID: "groq/llama-3.3-70b-versatile", DisplayName: "Llama 3.3 70B", Provider: ai.ProviderGroq},
		{ID: "groq/llama-3.1-8b-instant", DisplayName: "Llama 3.1 8B", Provider: ai.ProviderGroq},
	}
}

// geminiOperation calls the Gemini API for the resolved model.
func geminiOperation(ctx context.Context, apiKey string) (client.Operation[string], error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return func(m ai.ModelID) (string, error) {
		resp, err := gc.Models.GenerateContent(ctx, string(m),
			genai.Text("Reply with one short sentence about resilient systems."), nil)
		if err != nil {
			return "", google.WrapError(err)
		}
		return resp.Text(), nil
	}, nil
}

// simulatedOperation fails twice with a transient error, then succeeds.
func simulatedOperation(logger *slog.Logger) client.Operation[string] {
	calls := 0
	return func(m ai.ModelID) (string, error) {
		calls++
		if calls < 3 {
			logger.Debug("simulating transient failure", "call", calls)
			return "", ai.NewProviderError("service temporarily unavailable", 503, nil)
		}
		return fmt.Sprintf("simulated response from %s after %d attempts", m, calls), nil
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
