package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"sizing-assistant/internal/service"
	"sizing-assistant/internal/storage"
)

// ResultResponse represents one stored result.
type ResultResponse struct {
	ID            string          `json:"id"`
	CreatedAt     string          `json:"created_at"`
	ProjectName   string          `json:"project_name"`
	JobNumber     string          `json:"job_number"`
	LoadTagNumber string          `json:"load_tag_number"`
	Model         string          `json:"model"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	Prompt        string          `json:"prompt,omitempty"`
	Parameters    json.RawMessage `json:"parameters,omitempty"`
}

// ResultsResponse represents a list of stored results.
type ResultsResponse struct {
	Results []ResultResponse `json:"results"`
}

// ResultsHandler serves the results history.
type ResultsHandler struct {
	session service.Session
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(session service.Session) *ResultsHandler {
	return &ResultsHandler{session: session}
}

// List handles GET /api/results.
func (h *ResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	results, err := h.session.Results(ctx, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list results")
		return
	}

	resp := ResultsResponse{Results: make([]ResultResponse, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, toResultResponse(res, false))
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Get handles GET /api/results/{id}.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.session.Result(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get result")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toResultResponse(*result, true))
}

func toResultResponse(r storage.Result, detail bool) ResultResponse {
	resp := ResultResponse{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		ProjectName:   r.ProjectName,
		JobNumber:     r.JobNumber,
		LoadTagNumber: r.LoadTagNumber,
		Model:         r.Model,
		Status:        r.Status,
		Message:       r.Message,
	}
	if detail {
		resp.Prompt = r.Prompt
		if json.Valid([]byte(r.Parameters)) {
			resp.Parameters = json.RawMessage(r.Parameters)
		}
	}
	return resp
}
