package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort     string
	LogLevel    slog.Level
	LogFormat   string
	DBPath      string
	Environment string

	// ProviderOverride forces a specific AI provider regardless of
	// environment tier. Empty means "use the tier default".
	ProviderOverride string
	RequestTimeout   time.Duration

	OllamaURL   string
	OllamaModel string

	GroqAPIKey string
	GroqModel  string

	GeminiAPIKey string
	GeminiModel  string

	HFAPIKey string
	HFModel  string

	TogetherAPIKey string
	TogetherModel  string

	GenericBaseURL string
	GenericAPIKey  string
	GenericModel   string
}

// hostedKey maps hosted provider names to the env var that must be set
// when that provider is explicitly selected.
var hostedKey = map[string]string{
	"groq":        "GROQ_API_KEY",
	"gemini":      "GEMINI_API_KEY",
	"huggingface": "HF_API_KEY",
	"together":    "TOGETHER_API_KEY",
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

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
		APIPort:     getEnv("API_PORT", "5000"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DBPath:      getEnv("DB_PATH", "./data/portfolio.db"),
		Environment: getEnv("APP_ENV", "development"),

		ProviderOverride: getEnv("AI_PROVIDER", ""),

		OllamaURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "llama3.2"),

		GroqAPIKey: getEnv("GROQ_API_KEY", ""),
		GroqModel:  getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		HFAPIKey: getEnv("HF_API_KEY", ""),
		HFModel:  getEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.3"),

		TogetherAPIKey: getEnv("TOGETHER_API_KEY", ""),
		TogetherModel:  getEnv("TOGETHER_MODEL", "meta-llama/Llama-3.3-70B-Instruct-Turbo"),

		GenericBaseURL: getEnv("GENERIC_AI_URL", ""),
		GenericAPIKey:  getEnv("GENERIC_AI_KEY", ""),
		GenericModel:   getEnv("GENERIC_AI_MODEL", ""),
	}

	cfg.LogLevel = parseLogLevel(getEnv("LOG_LEVEL", "info"))

	// Parse AI_TIMEOUT_MS (shared timeout budget for upstream AI calls)
	timeoutStr := getEnv("AI_TIMEOUT_MS", "30000")
	timeoutMs, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("AI_TIMEOUT_MS must be a valid integer: %w", err)
	}
	if timeoutMs <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT_MS must be greater than 0")
	}
	cfg.RequestTimeout = time.Duration(timeoutMs) * time.Millisecond

	if _, err := strconv.Atoi(cfg.APIPort); err != nil {
		return nil, fmt.Errorf("API_PORT must be a valid port number: %w", err)
	}

	// An explicit hosted provider selection requires its API key up front;
	// the local provider needs none.
	if key, ok := hostedKey[cfg.ProviderOverride]; ok {
		if os.Getenv(key) == "" {
			return nil, fmt.Errorf("%s is required when AI_PROVIDER=%s", key, cfg.ProviderOverride)
		}
	}
	if cfg.ProviderOverride == "generic" && cfg.GenericBaseURL == "" {
		return nil, fmt.Errorf("GENERIC_AI_URL is required when AI_PROVIDER=generic")
	}

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level, defaulting to info.
func parseLogLevel(s string) slog.Level {
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

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
