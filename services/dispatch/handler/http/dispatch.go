package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
	"github.com/guinchoja/backend/services/dispatch"
)

// DispatchHandler exposes the request lifecycle endpoints the mobile app
// polls against.
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates the HTTP handler.
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// CreateRequest handles POST /preSolicitacao
func (h *DispatchHandler) CreateRequest(c echo.Context) error {
	var payload models.RequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if payload.RequesterID == "" {
		return utils.BadRequestResponse(c, "id_Motorista is required")
	}

	req, err := h.dispatchUC.CreateRequest(c.Request().Context(), &payload)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Request created", req)
}

// GetRequest handles POST /solicitacao
func (h *DispatchHandler) GetRequest(c echo.Context) error {
	var body struct {
		RequestID string `json:"id_Solicitacao"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if body.RequestID == "" {
		return utils.BadRequestResponse(c, "id_Solicitacao is required")
	}

	req, err := h.dispatchUC.GetRequest(c.Request().Context(), body.RequestID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request retrieved", req)
}

// GetRide handles GET /corrida?idSolicitacao=
func (h *DispatchHandler) GetRide(c echo.Context) error {
	requestID := c.QueryParam("idSolicitacao")
	if requestID == "" {
		return utils.BadRequestResponse(c, "idSolicitacao is required")
	}

	req, err := h.dispatchUC.GetRide(c.Request().Context(), requestID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", req)
}

// PendingForProvider handles GET /popupsolicitacao?id_guincho=
func (h *DispatchHandler) PendingForProvider(c echo.Context) error {
	providerID := c.QueryParam("id_guincho")
	if providerID == "" {
		return utils.BadRequestResponse(c, "id_guincho is required")
	}

	reqs, err := h.dispatchUC.PendingForProvider(c.Request().Context(), providerID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending requests retrieved", reqs)
}

// UpdateRequest handles PUT /updatePreSolicitacao: a provider decision
// (Aceite/Recusado) or a requester cancellation (Cancelada).
func (h *DispatchHandler) UpdateRequest(c echo.Context) error {
	var body models.StatusUpdatePayload
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if body.RequestID == "" {
		return utils.BadRequestResponse(c, "id_Solicitacao is required")
	}

	ctx := c.Request().Context()
	var req *models.ServiceRequest
	var err error

	switch models.ParseStatus(body.Status) {
	case models.StatusAccepted:
		req, err = h.dispatchUC.Decide(ctx, body.RequestID, true)
	case models.StatusRejected:
		req, err = h.dispatchUC.Decide(ctx, body.RequestID, false)
	case models.StatusCancelled:
		req, err = h.dispatchUC.Cancel(ctx, body.RequestID)
	default:
		return utils.BadRequestResponse(c, "status must be one of "+
			constants.StatusAceite+", "+constants.StatusRecusado+", "+constants.StatusCancelada)
	}
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request updated", req)
}

// UpdateRide handles PUT /AtualizaCorrida: pickup (Em Andamento) and
// drop-off (Finalizada) confirmations, each checked against its validation
// code.
func (h *DispatchHandler) UpdateRide(c echo.Context) error {
	var body struct {
		RequestID string `json:"id_Solicitacao"`
		Status    string `json:"status"`
		Code      string `json:"codigo"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if body.RequestID == "" {
		return utils.BadRequestResponse(c, "id_Solicitacao is required")
	}

	ctx := c.Request().Context()
	var req *models.ServiceRequest
	var err error

	switch models.ParseStatus(body.Status) {
	case models.StatusInTransit:
		req, err = h.dispatchUC.ConfirmStart(ctx, body.RequestID, body.Code)
	case models.StatusCompleted:
		req, err = h.dispatchUC.ConfirmEnd(ctx, body.RequestID, body.Code)
	default:
		return utils.BadRequestResponse(c, "status must be "+
			constants.StatusEmAndamento+" or "+constants.StatusFinalizada)
	}
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride updated", req)
}

// mapError translates the domain taxonomy onto HTTP statuses. Precondition
// failures are final answers; only transport trouble reads as a gateway
// problem.
func (h *DispatchHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrNotFound):
		return utils.NotFoundResponse(c, "Request not found")
	case errors.Is(err, dispatch.ErrActiveRequest):
		return utils.ConflictResponse(c, "An open request already exists for this requester")
	case errors.Is(err, dispatch.ErrRequestTaken):
		return utils.ConflictResponse(c, "Request is no longer available")
	case errors.Is(err, dispatch.ErrValidationCode):
		return utils.BadRequestResponse(c, "Validation code does not match")
	case errors.Is(err, dispatch.ErrTerminalState), errors.Is(err, dispatch.ErrInvalidTransition):
		return utils.ConflictResponse(c, "Request state does not allow this operation")
	default:
		return utils.BadGatewayResponse(c, "Backend unavailable")
	}
}
