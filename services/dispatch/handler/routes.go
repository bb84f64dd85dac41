package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/services/dispatch"
	httpHandler "github.com/guinchoja/backend/services/dispatch/handler/http"
)

// Handler wires the dispatch endpoints onto the relay's router.
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
}

// NewHandler creates the combined handler.
func NewHandler(dispatchUC dispatch.DispatchUC) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
	}
}

// RegisterRoutes registers the lifecycle routes. Paths keep the shape the
// mobile clients already call.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/preSolicitacao", h.dispatchHTTP.CreateRequest)
	e.POST("/solicitacao", h.dispatchHTTP.GetRequest)
	e.GET("/corrida", h.dispatchHTTP.GetRide)
	e.GET("/popupsolicitacao", h.dispatchHTTP.PendingForProvider)
	e.PUT("/updatePreSolicitacao", h.dispatchHTTP.UpdateRequest)
	e.PUT("/AtualizaCorrida", h.dispatchHTTP.UpdateRide)
}
