package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultHFURL = "https://api-inference.huggingface.co/models"

// HuggingFaceAdapter talks to the Hugging Face inference API. It is a
// text-completion provider: a single combined prompt goes in, and the
// response is either a bare object or a one-element array of generated text.
type HuggingFaceAdapter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewHuggingFaceAdapter creates an adapter for the Hugging Face inference API.
func NewHuggingFaceAdapter(cfg Config) *HuggingFaceAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHFURL
	}
	return &HuggingFaceAdapter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  newHTTPClient(cfg.Timeout),
	}
}

// ID returns the provider id.
func (a *HuggingFaceAdapter) ID() ID { return HuggingFace }

type hfRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxNewTokens   int  `json:"max_new_tokens,omitempty"`
		ReturnFullText bool `json:"return_full_text"`
	} `json:"parameters"`
}

type hfGeneratedText struct {
	GeneratedText string `json:"generated_text"`
}

// Send sends the combined prompt to the model inference endpoint.
func (a *HuggingFaceAdapter) Send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if a.apiKey == "" {
		return "", errorf(HuggingFace, "missing API key")
	}

	var payload hfRequest
	payload.Inputs = combinePrompt(systemPrompt, userMessage)
	payload.Parameters.MaxNewTokens = 1024
	payload.Parameters.ReturnFullText = false

	headers := map[string]string{
		"Authorization": "Bearer " + a.apiKey,
	}

	raw, err := postJSON(ctx, a.client, HuggingFace, a.baseURL+"/"+a.model, headers, payload)
	if err != nil {
		return "", err
	}

	text, err := decodeHFResponse(raw)
	if err != nil {
		return "", newError(HuggingFace, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errorf(HuggingFace, "empty generated text")
	}
	return text, nil
}

// decodeHFResponse normalizes the two envelope shapes the inference API
// returns: an array of generations or a single object.
func decodeHFResponse(raw []byte) (string, error) {
	var list []hfGeneratedText
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return "", fmt.Errorf("empty generation list")
		}
		return list[0].GeneratedText, nil
	}

	var single hfGeneratedText
	if err := json.Unmarshal(raw, &single); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return single.GeneratedText, nil
}
