package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/contextutil"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/storage"
)

// maxHistoryEntries bounds how many transcript rows one request returns.
const maxHistoryEntries = 200

// HistoryHandler syncs chat transcripts: the client appends entries it
// holds locally and reads back a session's history.
type HistoryHandler struct {
	chatLogs storage.ChatLogStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(chatLogs storage.ChatLogStore) *HistoryHandler {
	return &HistoryHandler{chatLogs: chatLogs}
}

// HistoryEntry is one transcript line on the wire.
type HistoryEntry struct {
	SessionID string `json:"sessionId"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HistoryResponse wraps a session transcript.
type HistoryResponse struct {
	SessionID string         `json:"sessionId"`
	Entries   []HistoryEntry `json:"entries"`
}

// ServeHTTP handles GET and POST /api/chat/history.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *HistoryHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	entries, err := h.chatLogs.ListBySession(ctx, sessionID, maxHistoryEntries)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list chat history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	resp := HistoryResponse{
		SessionID: sessionID,
		Entries:   make([]HistoryEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntry{
			SessionID: e.SessionID,
			Sender:    e.Sender,
			Text:      e.Text,
			Timestamp: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode history response", "error", err)
	}
}

func (h *HistoryHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var entry HistoryEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		logger.WarnContext(ctx, "invalid history entry body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if entry.SessionID == "" || strings.TrimSpace(entry.Text) == "" {
		writeError(w, http.StatusBadRequest, "sessionId and text are required")
		return
	}
	if entry.Sender != "user" && entry.Sender != "bot" {
		writeError(w, http.StatusBadRequest, "sender must be user or bot")
		return
	}

	record := &storage.ChatLogRecord{
		SessionID: entry.SessionID,
		Sender:    entry.Sender,
		Text:      entry.Text,
	}
	if err := h.chatLogs.Append(ctx, record); err != nil {
		logger.ErrorContext(ctx, "failed to append chat history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save history")
		return
	}

	w.WriteHeader(http.StatusCreated)
}
