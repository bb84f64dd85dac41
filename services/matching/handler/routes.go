package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/services/matching"
	httpHandler "github.com/guinchoja/backend/services/matching/handler/http"
)

// Handler wires the matching endpoints onto the relay's router.
type Handler struct {
	matchingHTTP *httpHandler.MatchingHandler
}

// NewHandler creates the combined handler.
func NewHandler(matchingUC matching.MatchingUC) *Handler {
	return &Handler{
		matchingHTTP: httpHandler.NewMatchingHandler(matchingUC),
	}
}

// RegisterRoutes registers the presence and ranking routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/guinchosativos", h.matchingHTTP.ActiveProviders)
	e.PUT("/updatelocal", h.matchingHTTP.UpdateLocation)
	e.PUT("/updatestatus", h.matchingHTTP.UpdateStatus)
}
