package handler

import (
	"github.com/labstack/echo/v4"

	historyHTTP "github.com/guinchoja/backend/services/history/handler/http"
)

// Handler registers the history service routes.
type Handler struct {
	historyHandler *historyHTTP.HistoryHandler
}

// NewHandler creates the history route registrar.
func NewHandler(historyHandler *historyHTTP.HistoryHandler) *Handler {
	return &Handler{historyHandler: historyHandler}
}

// RegisterRoutes wires the history endpoints onto the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/corridasfinalizadas", h.historyHandler.CompletedRides)
}
