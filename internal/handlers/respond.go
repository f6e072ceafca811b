// Package handlers maps HTTP requests onto the category and post services
// and their results back onto JSON responses and status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"microcms/internal/service"
)

// ErrorResponse is the body of every error response: a human-readable
// message plus a machine-readable code.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MessageResponse is the body of successful delete responses.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeServiceError translates the service error taxonomy into status codes.
// Anything outside the taxonomy is a storage or programming failure: logged
// and answered with an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "validation_error")
	case errors.Is(err, service.ErrCategoryNotFound):
		writeError(w, http.StatusBadRequest, err.Error(), "category_not_found")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error(), "not_found")
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, err.Error(), "conflict")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "internal_error")
	}
}
