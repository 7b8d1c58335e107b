package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// GenericAdapter talks to any OpenAI-compatible server (llama.cpp, vLLM,
// LM Studio, OpenRouter) at a configured base URL. Some of these return
// choices[].message.content, older completion servers return choices[].text;
// both are normalized.
type GenericAdapter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGenericAdapter creates an adapter for an OpenAI-compatible endpoint.
func NewGenericAdapter(cfg Config) *GenericAdapter {
	return &GenericAdapter{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  newHTTPClient(cfg.Timeout),
	}
}

// ID returns the provider id.
func (a *GenericAdapter) ID() ID { return Generic }

// Send sends system/user messages to the chat completions endpoint.
// The API key is optional: self-hosted servers often run without auth.
func (a *GenericAdapter) Send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if a.baseURL == "" {
		return "", errorf(Generic, "missing base URL")
	}

	payload := chatCompletionRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0.7,
	}

	var headers map[string]string
	if a.apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + a.apiKey}
	}

	raw, err := postJSON(ctx, a.client, Generic, a.baseURL+"/v1/chat/completions", headers, payload)
	if err != nil {
		return "", err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", newError(Generic, fmt.Errorf("failed to decode response: %w", err))
	}

	text := firstChoiceText(&resp)
	if strings.TrimSpace(text) == "" {
		return "", errorf(Generic, "no choices returned")
	}
	return text, nil
}
