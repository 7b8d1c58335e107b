// Package provider contains one adapter per upstream language-model
// provider. Every adapter translates the provider-agnostic
// (systemPrompt, userMessage) pair into that provider's wire format and
// normalizes the response back into plain text.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ID identifies an upstream provider.
type ID string

const (
	Ollama      ID = "ollama"
	Groq        ID = "groq"
	HuggingFace ID = "huggingface"
	Gemini      ID = "gemini"
	Together    ID = "together"
	Generic     ID = "generic"
)

// Config holds everything needed to construct one adapter.
type Config struct {
	ID      ID
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Adapter is the provider-agnostic capability every upstream implements.
// Send returns the raw model text; it never returns empty text without an
// error.
type Adapter interface {
	Send(ctx context.Context, systemPrompt, userMessage string) (string, error)
	ID() ID
}

// Error is a typed failure from a provider adapter: network error, non-2xx
// status, timeout, or a malformed/empty provider envelope.
type Error struct {
	Provider ID
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err as a provider Error.
func newError(id ID, err error) *Error {
	return &Error{Provider: id, Err: err}
}

// errorf builds a provider Error from a format string.
func errorf(id ID, format string, args ...any) *Error {
	return &Error{Provider: id, Err: fmt.Errorf(format, args...)}
}

// IsProviderError reports whether err is (or wraps) a provider Error.
func IsProviderError(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}

// maxErrorBody bounds how much of an upstream error body is kept in errors.
const maxErrorBody = 512

// postJSON marshals payload, POSTs it with the given headers under the
// adapter timeout, and returns the response body. Non-2xx statuses become
// provider Errors carrying a body excerpt.
func postJSON(ctx context.Context, client *http.Client, id ID, url string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newError(id, fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, newError(id, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, newError(id, fmt.Errorf("failed to send request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(id, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := raw
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, errorf(id, "bad status %d: %s", resp.StatusCode, string(excerpt))
	}

	return raw, nil
}

// newHTTPClient builds the http.Client every adapter shares, bounded by the
// configured timeout budget.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// combinePrompt joins the system prompt and user message for providers that
// accept a single prompt string instead of role-tagged messages.
func combinePrompt(systemPrompt, userMessage string) string {
	if systemPrompt == "" {
		return userMessage
	}
	return systemPrompt + "\n\nUser: " + userMessage
}
