package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
	"github.com/guinchoja/backend/services/matching"
)

// MatchingHandler exposes the presence and ranking endpoints.
type MatchingHandler struct {
	matchingUC matching.MatchingUC
}

// NewMatchingHandler creates the HTTP handler.
func NewMatchingHandler(matchingUC matching.MatchingUC) *MatchingHandler {
	return &MatchingHandler{matchingUC: matchingUC}
}

// ActiveProviders handles GET /guinchosativos. With lat_long and destino
// query parameters it returns the ranked list with prices and ETAs; without
// them it degrades to the raw active list the legacy clients expect.
func (h *MatchingHandler) ActiveProviders(c echo.Context) error {
	ctx := c.Request().Context()

	origin, originErr := models.ParseLatLong(c.QueryParam("lat_long"))
	dest, destErr := models.ParseLatLong(c.QueryParam("destino"))

	if originErr == nil && destErr == nil {
		ranked, err := h.matchingUC.RankProviders(ctx, *origin, *dest)
		if err != nil {
			return utils.BadGatewayResponse(c, "Backend unavailable")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Providers ranked", ranked)
	}

	providers, err := h.matchingUC.ActiveProviders(ctx)
	if err != nil {
		return utils.BadGatewayResponse(c, "Backend unavailable")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active providers retrieved", providers)
}

// UpdateLocation handles PUT /updatelocal.
func (h *MatchingHandler) UpdateLocation(c echo.Context) error {
	var payload models.LocationUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if _, err := models.ParseLatLong(payload.LatLong); err != nil {
		return utils.BadRequestResponse(c, "lat_long must be a valid coordinate pair")
	}

	if err := h.matchingUC.UpdateLocation(c.Request().Context(), &payload); err != nil {
		return utils.BadGatewayResponse(c, "Failed to record location update")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// UpdateStatus handles PUT /updatestatus.
func (h *MatchingHandler) UpdateStatus(c echo.Context) error {
	var payload models.ProviderStatusPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if payload.ProviderID == "" {
		return utils.BadRequestResponse(c, "id_cliente is required")
	}

	if err := h.matchingUC.SetAvailability(c.Request().Context(), &payload); err != nil {
		return utils.BadGatewayResponse(c, "Failed to update availability")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}
