package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// OllamaAdapter talks to a local Ollama inference server. It sends a single
// combined prompt via the non-streaming generate endpoint and needs no auth.
type OllamaAdapter struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaAdapter creates an adapter for a local Ollama server.
func NewOllamaAdapter(cfg Config) *OllamaAdapter {
	return &OllamaAdapter{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  newHTTPClient(cfg.Timeout),
	}
}

// ID returns the provider id.
func (a *OllamaAdapter) ID() ID { return Ollama }

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Send sends the combined prompt to /api/generate and returns the raw text.
func (a *OllamaAdapter) Send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload := ollamaGenerateRequest{
		Model:  a.model,
		Prompt: combinePrompt(systemPrompt, userMessage),
		Stream: false,
		// Ollama supports constrained JSON output natively.
		Format: "json",
	}

	raw, err := postJSON(ctx, a.client, Ollama, a.baseURL+"/api/generate", nil, payload)
	if err != nil {
		return "", err
	}

	var resp ollamaGenerateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", newError(Ollama, fmt.Errorf("failed to decode response: %w", err))
	}

	if strings.TrimSpace(resp.Response) == "" {
		return "", errorf(Ollama, "empty response from model")
	}
	return resp.Response, nil
}
