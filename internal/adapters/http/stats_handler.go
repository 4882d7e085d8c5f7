package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklight/core/internal/application/services"
	"github.com/tasklight/core/internal/infrastructure/logger"
)

// StatsHandler serves the aggregated statistics for the caller's snapshot
type StatsHandler struct {
	statsService *services.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// Statistics recomputes and returns the full aggregation for the caller.
func (h *StatsHandler) Statistics(c echo.Context) error {
	result, err := h.statsService.Statistics(c.Request().Context(), ownerID(c))
	if err != nil {
		h.logger.Error("Statistics failed", "error", err)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, result)
}
