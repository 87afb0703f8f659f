package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"sizing-assistant/internal/config"
	"sizing-assistant/internal/handlers"
	"sizing-assistant/internal/http"
	"sizing-assistant/internal/llm"
	"sizing-assistant/internal/markdown"
	"sizing-assistant/internal/service"
	"sizing-assistant/internal/settings"
	"sizing-assistant/internal/storage"
)

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

	// Initialize results database
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

	resultRepo := storage.NewResultRepo(db)

	store := settings.NewStore(cfg.InitialSettings())
	if cfg.OpenAIAPIKey == "" {
		slog.Warn("No API key configured; set one via PUT /api/settings before submitting")
	}

	client := llm.NewClient(cfg.CompletionURL, cfg.CompletionTimeout)
	renderer := markdown.NewRenderer()

	session := service.NewSession(client, store, resultRepo, renderer)

	page, err := handlers.NewPageHandler(renderer)
	if err != nil {
		log.Fatalf("Failed to prepare index page: %v", err)
	}

	router := http.NewRouter(&http.Deps{
		Session: session,
		DB:      db,
		Page:    page,
	})

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Completion configuration",
		"url", cfg.CompletionURL,
		"model", cfg.CompletionModel,
		"timeout", cfg.CompletionTimeout,
	)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
