package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sizing-assistant/internal/handlers"
	"sizing-assistant/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Session service.Session
	DB      handlers.Pinger // optional; nil skips the database health check
	Page    http.Handler    // serves the entry form at "/"
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(Metrics)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	sizingHandler := handlers.NewSizingHandler(deps.Session)
	settingsHandler := handlers.NewSettingsHandler(deps.Session)
	resultsHandler := handlers.NewResultsHandler(deps.Session)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Session)

	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", sizingHandler.Validate)
		r.Post("/prompt", sizingHandler.Prompt)
		r.Post("/recommend", sizingHandler.Recommend)

		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Put)
		r.Get("/session", settingsHandler.SessionState)

		r.Get("/results", resultsHandler.List)
		r.Get("/results/{id}", resultsHandler.Get)

		r.Method(http.MethodGet, "/health", healthHandler)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if deps.Page != nil {
		r.Method(http.MethodGet, "/", deps.Page)
	}

	return r
}
