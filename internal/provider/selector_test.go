package provider

import (
	"testing"
	"time"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Environment:    "development",
		RequestTimeout: 30 * time.Second,
		OllamaURL:      "http://localhost:11434",
		OllamaModel:    "llama3.2",
		GroqAPIKey:     "gk",
		GroqModel:      "llama-3.1-8b-instant",
		GeminiAPIKey:   "gm",
		GeminiModel:    "gemini-1.5-flash",
		HFAPIKey:       "hf",
		HFModel:        "mistral",
		TogetherAPIKey: "tg",
		TogetherModel:  "llama-70b",
		GenericBaseURL: "http://llm.internal:8080",
		GenericModel:   "local-model",
	}
}

func TestSelect_EnvironmentTiers(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want ID
	}{
		{"production uses hosted fast provider", "production", Groq},
		{"development uses local provider", "development", Ollama},
		{"staging uses local provider", "staging", Ollama},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Environment = tt.env

			got := Select(cfg)
			if got.ID != tt.want {
				t.Errorf("Select() = %s, want %s", got.ID, tt.want)
			}
			if got.Timeout != cfg.RequestTimeout {
				t.Errorf("Select() timeout = %v, want %v", got.Timeout, cfg.RequestTimeout)
			}
		})
	}
}

func TestSelect_OverrideWins(t *testing.T) {
	tests := []struct {
		override string
		want     ID
	}{
		{"ollama", Ollama},
		{"groq", Groq},
		{"huggingface", HuggingFace},
		{"gemini", Gemini},
		{"together", Together},
		{"generic", Generic},
	}

	for _, tt := range tests {
		t.Run(tt.override, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Environment = "production" // override must beat the tier default
			cfg.ProviderOverride = tt.override

			got := Select(cfg)
			if got.ID != tt.want {
				t.Errorf("Select() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestSelect_UnknownOverrideFallsThrough(t *testing.T) {
	cfg := baseConfig()
	cfg.ProviderOverride = "skynet"
	cfg.Environment = "production"

	if got := Select(cfg); got.ID != Groq {
		t.Errorf("Select() = %s, want tier default groq", got.ID)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	cfg := baseConfig()
	first := Select(cfg)
	second := Select(cfg)
	if first != second {
		t.Errorf("Select() not deterministic: %+v vs %+v", first, second)
	}
}

func TestNewAdapter(t *testing.T) {
	for _, id := range []ID{Ollama, Groq, HuggingFace, Gemini, Together, Generic} {
		pc := Config{ID: id, BaseURL: "http://localhost:1", Model: "m", APIKey: "k", Timeout: time.Second}
		adapter, err := NewAdapter(pc)
		if err != nil {
			t.Fatalf("NewAdapter(%s) error = %v", id, err)
		}
		if adapter.ID() != id {
			t.Errorf("NewAdapter(%s).ID() = %s", id, adapter.ID())
		}
	}

	if _, err := NewAdapter(Config{ID: "mystery"}); err == nil {
		t.Error("NewAdapter() should reject unknown provider ids")
	}
}
