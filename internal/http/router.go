package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/assistant"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/handlers"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/provider"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AssistantService assistant.Service
	ChatLogs         storage.ChatLogStore
	ProviderID       provider.ID
	Version          string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.AssistantService)
	statusHandler := handlers.NewStatusHandler(deps.ProviderID, deps.Version)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodGet, "/status", statusHandler)
		if deps.ChatLogs != nil {
			historyHandler := handlers.NewHistoryHandler(deps.ChatLogs)
			r.Handle("/chat/history", historyHandler)
		}
	})

	return r
}
