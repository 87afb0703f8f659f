package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"sizing-assistant/internal/contextutil"
	"sizing-assistant/internal/service"
	"sizing-assistant/internal/sizing"
)

// RecommendResponse represents the HTTP response payload for a recommendation.
type RecommendResponse struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	HTML     string `json:"html,omitempty"`
	ResultID string `json:"result_id,omitempty"`
}

// ValidateResponse represents the HTTP response payload for validation.
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors []FieldErrorEntry `json:"errors"`
}

// PromptResponse represents the HTTP response payload for a prompt preview.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// SizingHandler serves the parameter validation, preview and recommendation endpoints.
type SizingHandler struct {
	session service.Session
	now     func() time.Time
}

// NewSizingHandler creates a new SizingHandler.
func NewSizingHandler(session service.Session) *SizingHandler {
	return &SizingHandler{
		session: session,
		now:     time.Now,
	}
}

// decodeParameters reads a parameter set from the request body. Omitted
// fields keep the form defaults.
func (h *SizingHandler) decodeParameters(r *http.Request) (sizing.ParameterSet, error) {
	p := sizing.Defaults(h.now())
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return sizing.ParameterSet{}, err
	}
	return p, nil
}

// Validate handles POST /api/validate.
func (h *SizingHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	p, err := h.decodeParameters(r)
	if err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	errs := h.session.Validate(p)
	resp := ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: make([]FieldErrorEntry, 0, len(errs)),
	}
	for _, fe := range errs {
		resp.Errors = append(resp.Errors, FieldErrorEntry{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Prompt handles POST /api/prompt.
func (h *SizingHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	p, err := h.decodeParameters(r)
	if err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompt, err := h.session.Preview(p)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compose prompt")
		return
	}
	writeJSON(ctx, w, http.StatusOK, PromptResponse{Prompt: prompt})
}

// Recommend handles POST /api/recommend. Completion failures are returned
// with status 200 and kind "error"; only validation and concurrency problems
// produce error statuses.
func (h *SizingHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	p, err := h.decodeParameters(r)
	if err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	display, err := h.session.ComposeAndSubmit(ctx, p)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process recommendation request")
		return
	}

	writeJSON(ctx, w, http.StatusOK, RecommendResponse{
		Kind:     string(display.Kind),
		Title:    display.Title,
		Message:  display.Message,
		HTML:     display.HTML,
		ResultID: display.ResultID,
	})
}
