package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"sizing-assistant/internal/llm"
	"sizing-assistant/internal/settings"
)

// Config holds all configuration for the application.
type Config struct {
	OpenAIAPIKey          string
	CompletionURL         string
	CompletionModel       string
	CompletionTemperature float64
	CompletionMaxTokens   int
	CompletionTimeout     time.Duration
	DBPath                string
	APIPort               string
	LogLevel              slog.Level
	LogFormat             string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"), // empty is allowed; the endpoint rejects the request
		CompletionURL:   getEnv("COMPLETION_URL", llm.DefaultURL),
		CompletionModel: getEnv("COMPLETION_MODEL", "gpt-3.5-turbo-instruct"),
		DBPath:          getEnv("DB_PATH", "./data/sizing.db"),
		APIPort:         getEnv("API_PORT", "9000"),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	temperature, err := strconv.ParseFloat(getEnv("COMPLETION_TEMPERATURE", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("COMPLETION_TEMPERATURE must be a number: %w", err)
	}
	cfg.CompletionTemperature = temperature

	maxTokens, err := strconv.Atoi(getEnv("COMPLETION_MAX_TOKENS", "100"))
	if err != nil {
		return nil, fmt.Errorf("COMPLETION_MAX_TOKENS must be a valid integer: %w", err)
	}
	cfg.CompletionMaxTokens = maxTokens

	if errs := settings.Validate(cfg.InitialSettings()); len(errs) > 0 {
		return nil, fmt.Errorf("invalid completion settings: %s", errs[0].Error())
	}

	timeout, err := time.ParseDuration(getEnv("COMPLETION_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("COMPLETION_TIMEOUT must be a duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("COMPLETION_TIMEOUT must be greater than 0")
	}
	cfg.CompletionTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	// Create ./data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// InitialSettings returns the completion settings the process starts with.
func (c *Config) InitialSettings() settings.Settings {
	return settings.Settings{
		APIKey:      c.OpenAIAPIKey,
		Model:       c.CompletionModel,
		Temperature: c.CompletionTemperature,
		MaxTokens:   c.CompletionMaxTokens,
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
