package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/assistant"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/config"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/http"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/provider"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/storage"
)

const version = "1.0.0"

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	portfolioRepo := storage.NewPortfolioRepo(db)
	chatLogRepo := storage.NewChatLogRepo(db)

	// Resolve the AI provider once and build its adapter
	providerCfg := provider.Select(cfg)
	adapter, err := provider.NewAdapter(providerCfg)
	if err != nil {
		log.Fatalf("Failed to create provider adapter: %v", err)
	}
	slog.Info("AI provider selected",
		"provider", string(providerCfg.ID),
		"model", providerCfg.Model,
		"timeout", providerCfg.Timeout,
	)

	// Create the assistant service
	assembler := assistant.NewAssembler(portfolioRepo)
	assistantService := assistant.NewService(assembler, adapter, chatLogRepo)
	slog.Info("Assistant service initialized")

	// Create router with dependencies
	deps := &http.Deps{
		AssistantService: assistantService,
		ChatLogs:         chatLogRepo,
		ProviderID:       providerCfg.ID,
		Version:          version,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "env", cfg.Environment)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
