package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
	"github.com/guinchoja/backend/services/history"
)

// HistoryHandler serves the history screens from the local archive.
type HistoryHandler struct {
	historyUC history.HistoryUC
}

// NewHistoryHandler creates the HTTP handler.
func NewHistoryHandler(historyUC history.HistoryUC) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// CompletedRides handles POST /corridasfinalizadas. The body names either
// idMotorista or idGuincho depending on which side is asking.
func (h *HistoryHandler) CompletedRides(c echo.Context) error {
	var query models.HistoryQuery
	if err := c.Bind(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if query.RequesterID == "" && query.ProviderID == "" {
		return utils.BadRequestResponse(c, "idMotorista or idGuincho is required")
	}

	rides, err := h.historyUC.CompletedRides(c.Request().Context(), query)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to query ride history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Completed rides retrieved", rides)
}
