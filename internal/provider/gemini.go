package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAdapter talks to the Google Generative Language API. Gemini keeps
// the system instruction separate from the user contents and supports a
// native JSON response mime type.
type GeminiAdapter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGeminiAdapter creates an adapter for the Gemini API.
func NewGeminiAdapter(cfg Config) *GeminiAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiURL
	}
	return &GeminiAdapter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  newHTTPClient(cfg.Timeout),
	}
}

// ID returns the provider id.
func (a *GeminiAdapter) ID() ID { return Gemini }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		ResponseMimeType string  `json:"responseMimeType,omitempty"`
		Temperature      float64 `json:"temperature,omitempty"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Send sends the system instruction and user message to generateContent.
func (a *GeminiAdapter) Send(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if a.apiKey == "" {
		return "", errorf(Gemini, "missing API key")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userMessage}}},
		},
	}
	if systemPrompt != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}}
	}
	payload.GenerationConfig.ResponseMimeType = "application/json"
	payload.GenerationConfig.Temperature = 0.7

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		a.baseURL, a.model, url.QueryEscape(a.apiKey))

	raw, err := postJSON(ctx, a.client, Gemini, endpoint, nil, payload)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", newError(Gemini, fmt.Errorf("failed to decode response: %w", err))
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errorf(Gemini, "no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", errorf(Gemini, "empty candidate text")
	}
	return text, nil
}
