package provider

import (
	"fmt"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/config"
)

// Select resolves which provider to use from configuration. Resolution
// order: explicit AI_PROVIDER override, else environment tier. Production
// runs on the hosted fast provider (Groq), everything else on the local
// Ollama server. Pure and deterministic: no health checks, no retries; a
// bad selection surfaces as a provider Error on first Send.
func Select(cfg *config.Config) Config {
	switch ID(cfg.ProviderOverride) {
	case Ollama:
		return ollamaConfig(cfg)
	case Groq:
		return groqConfig(cfg)
	case HuggingFace:
		return Config{ID: HuggingFace, Model: cfg.HFModel, APIKey: cfg.HFAPIKey, Timeout: cfg.RequestTimeout}
	case Gemini:
		return Config{ID: Gemini, Model: cfg.GeminiModel, APIKey: cfg.GeminiAPIKey, Timeout: cfg.RequestTimeout}
	case Together:
		return Config{ID: Together, Model: cfg.TogetherModel, APIKey: cfg.TogetherAPIKey, Timeout: cfg.RequestTimeout}
	case Generic:
		return Config{ID: Generic, BaseURL: cfg.GenericBaseURL, Model: cfg.GenericModel, APIKey: cfg.GenericAPIKey, Timeout: cfg.RequestTimeout}
	}

	if cfg.Environment == "production" {
		return groqConfig(cfg)
	}
	return ollamaConfig(cfg)
}

func ollamaConfig(cfg *config.Config) Config {
	return Config{ID: Ollama, BaseURL: cfg.OllamaURL, Model: cfg.OllamaModel, Timeout: cfg.RequestTimeout}
}

func groqConfig(cfg *config.Config) Config {
	return Config{ID: Groq, Model: cfg.GroqModel, APIKey: cfg.GroqAPIKey, Timeout: cfg.RequestTimeout}
}

// NewAdapter constructs the adapter for a selected provider config. The
// adapter is built once from the config and held by the caller; behavior is
// never re-derived from inspecting URLs at call time.
func NewAdapter(pc Config) (Adapter, error) {
	switch pc.ID {
	case Ollama:
		return NewOllamaAdapter(pc), nil
	case Groq:
		return NewGroqAdapter(pc), nil
	case HuggingFace:
		return NewHuggingFaceAdapter(pc), nil
	case Gemini:
		return NewGeminiAdapter(pc), nil
	case Together:
		return NewTogetherAdapter(pc), nil
	case Generic:
		return NewGenericAdapter(pc), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", pc.ID)
	}
}
