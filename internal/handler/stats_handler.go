package handler

import (
	"net/http"

	"bakery-api/internal/service"

	"github.com/rs/zerolog"
)

// StatsHandler handles dashboard statistics requests.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("handler", "stats").Logger(),
	}
}

// Get handles GET /api/dashboard/stats requests.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to compute statistics", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
