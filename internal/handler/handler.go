package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bakery-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a simple acknowledgement response.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing left to do for the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError translates a service error into a response. Domain errors
// map onto 404 (missing entity) or 400 (invalid argument) with their stable
// code; anything else is a 500 with the fallback message.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.NotFound() {
			status = http.StatusNotFound
		}
		logger.Warn().
			Str("code", domainErr.Code).
			Int("status", status).
			Msg(domainErr.Message)
		writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	logger.Error().Err(err).Msg(fallback)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fallback, Code: model.ErrCodeInternalError})
}

// pathID parses the {id} URL parameter as a UUID. On failure it writes a 400
// response and reports false.
func pathID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ID format", logger)
		return uuid.Nil, false
	}
	return id, true
}
