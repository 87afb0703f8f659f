package handlers

import (
	"encoding/json"
	"net/http"

	"sizing-assistant/internal/contextutil"
	"sizing-assistant/internal/service"
	"sizing-assistant/internal/settings"
)

// SettingsResponse represents the current settings. The API key is never returned in clear.
type SettingsResponse struct {
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
	APIKeySet    bool    `json:"api_key_set"`
	APIKeyMasked string  `json:"api_key_masked"`
	State        string  `json:"state"`
}

// SettingsRequest represents a settings update. Omitted fields keep their
// current values; an empty api_key keeps the current key.
type SettingsRequest struct {
	APIKey      string   `json:"api_key"`
	Model       *string  `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

// SettingsHandler handles HTTP requests for completion settings.
type SettingsHandler struct {
	session service.Session
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(session service.Session) *SettingsHandler {
	return &SettingsHandler{session: session}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.response())
}

// Put handles PUT /api/settings.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current := h.session.Settings()
	candidate := settings.Settings{
		APIKey:      req.APIKey,
		Model:       current.Model,
		Temperature: current.Temperature,
		MaxTokens:   current.MaxTokens,
	}
	if req.Model != nil {
		candidate.Model = *req.Model
	}
	if req.Temperature != nil {
		candidate.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		candidate.MaxTokens = *req.MaxTokens
	}

	if err := h.session.SaveSettings(ctx, candidate); err != nil {
		handleServiceError(w, ctx, err, "Failed to save settings")
		return
	}

	writeJSON(ctx, w, http.StatusOK, h.response())
}

// SessionState handles GET /api/session.
func (h *SettingsHandler) SessionState(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"state": string(h.session.State())})
}

func (h *SettingsHandler) response() SettingsResponse {
	s := h.session.Settings()
	return SettingsResponse{
		Model:        s.Model,
		Temperature:  s.Temperature,
		MaxTokens:    s.MaxTokens,
		APIKeySet:    s.APIKey != "",
		APIKeyMasked: s.MaskedKey(),
		State:        string(h.session.State()),
	}
}
