package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultGroqURL = "https://api.groq.com/openai/v1"

// GroqAdapter talks to the Groq chat completions API. Groq supports native
// JSON output mode, so the adapter requests it instead of relying on the
// prompt contract alone.
type GroqAdapter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGroqAdapter creates an adapter for the Groq API.
func NewGroqAdapter(cfg Config) *GroqAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqURL
	}
	return &GroqAdapter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  newHTTPClient(cfg.Timeout),
	}
}

// ID returns the provider id.
func (a *GroqAdapter) ID() ID { return Groq }

// Send sends system/user messages to the chat completions endpoint.
func (a *GroqAdapter) Send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if a.apiKey == "" {
		return "", errorf(Groq, "missing API key")
	}

	payload := chatCompletionRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}

	raw, err := postJSON(ctx, a.client, Groq, a.baseURL+"/chat/completions", headers, payload)
	if err != nil {
		return "", err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", newError(Groq, fmt.Errorf("failed to decode response: %w", err))
	}

	text := firstChoiceText(&resp)
	if strings.TrimSpace(text) == "" {
		return "", errorf(Groq, "no choices returned")
	}
	return text, nil
}
