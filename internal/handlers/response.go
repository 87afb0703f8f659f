package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"sizing-assistant/internal/contextutil"
	"sizing-assistant/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields []FieldErrorEntry `json:"fields,omitempty"`
}

// FieldErrorEntry names one invalid field.
type FieldErrorEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
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

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErrs service.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.InfoContext(ctx, "request failed validation", "error", err)
		fields := make([]FieldErrorEntry, 0, len(validationErrs))
		for _, v := range validationErrs {
			fields = append(fields, FieldErrorEntry{Field: v.Field, Message: v.Message})
		}
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{
			Error:  "Validation failed",
			Fields: fields,
		})
		return
	}

	if errors.Is(err, service.ErrBusy) {
		logger.WarnContext(ctx, "submission rejected", "error", err)
		writeError(w, http.StatusConflict, "A submission is already in progress")
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)
	writeError(w, http.StatusInternalServerError, defaultMsg)
}
