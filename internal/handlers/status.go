package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/contextutil"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/provider"
)

// StatusHandler serves the static health descriptor the UI's status readout
// consumes. It never probes the upstream provider: selection is pure, and
// failures surface on first use.
type StatusHandler struct {
	providerID provider.ID
	version    string
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(providerID provider.ID, version string) *StatusHandler {
	return &StatusHandler{
		providerID: providerID,
		version:    version,
	}
}

// StatusResponse represents the status descriptor.
type StatusResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Provider  string `json:"provider"`
	Timestamp string `json:"timestamp"`
}

// ServeHTTP handles GET /api/status.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resp := StatusResponse{
		Status:    "online",
		Service:   "assistant-bridge",
		Version:   h.version,
		Provider:  string(h.providerID),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode status response", "error", err)
	}
}
