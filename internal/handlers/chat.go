package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/assistant"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/contextutil"
)

// ChatHandler handles HTTP requests for assistant chat.
type ChatHandler struct {
	service assistant.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service assistant.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message   string `json:"message"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Response  string           `json:"response"`
	Command   *command.Command `json:"command"`
	SessionID string           `json:"sessionId"`
	Timestamp string           `json:"timestamp"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles POST /api/chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Reject empty messages before anything touches the provider layer.
	if strings.TrimSpace(req.Message) == "" {
		logger.WarnContext(ctx, "missing message in chat request")
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	svcReq := assistant.Request{
		Message:   req.Message,
		SessionID: sessionID,
		Scope:     assistant.ParseScope(req.Context),
	}

	result, err := h.service.Chat(ctx, svcReq)
	if err != nil {
		var validationErr *assistant.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
			return
		}
		logger.ErrorContext(ctx, "chat service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process chat request")
		return
	}

	resp := ChatResponse{
		Response:  result.Text,
		Command:   result.Command,
		SessionID: sessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
