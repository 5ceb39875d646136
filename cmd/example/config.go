package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the demo configuration loaded from environment variables.
type Config struct {
	Model    string
	LogLevel string // debug, info, warn, error

	GoogleKey string

	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() *Config {
	godotenv.Load() // Load .env file if present

	return &Config{
		Model:        getEnvOrDefault("RELAY_MODEL", "gemini-flash"),
		LogLevel:     getEnvOrDefault("RELAY_LOG_LEVEL", "info"),
		GoogleKey:    os.Getenv("GOOGLE_API_KEY"),
		MaxAttempts:  getEnvIntOrDefault("RELAY_MAX_ATTEMPTS", 3),
		InitialDelay: getEnvDurationOrDefault("RELAY_INITIAL_DELAY", time.Second),
		MaxDelay:     getEnvDurationOrDefault("RELAY_MAX_DELAY", 30*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
