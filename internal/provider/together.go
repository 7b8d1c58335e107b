package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultTogetherURL = "https://api.together.xyz/v1"

// TogetherAdapter talks to the Together chat completions API. Together has
// no reliable JSON output mode for all models, so the adapter relies on the
// prompt contract and leaves normalization to the response parser.
type TogetherAdapter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewTogetherAdapter creates an adapter for the Together API.
func NewTogetherAdapter(cfg Config) *TogetherAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTogetherURL
	}
	return &TogetherAdapter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  newHTTPClient(cfg.Timeout),
	}
}

// ID returns the provider id.
func (a *TogetherAdapter) ID() ID { return Together }

// Send sends system/user messages to the chat completions endpoint.
func (a *TogetherAdapter) Send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if a.apiKey == "" {
		return "", errorf(Together, "missing API key")
	}

	payload := chatCompletionRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0.7,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}

	raw, err := postJSON(ctx, a.client, Together, a.baseURL+"/chat/completions", headers, payload)
	if err != nil {
		return "", err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", newError(Together, fmt.Errorf("failed to decode response: %w", err))
	}

	text := firstChoiceText(&resp)
	if strings.TrimSpace(text) == "" {
		return "", errorf(Together, "no choices returned")
	}
	return text, nil
}
