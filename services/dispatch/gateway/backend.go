package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
)

// BackendGW talks to the backend of record over its legacy endpoints. The
// backend answers inconsistently (bare entities or {success,data} envelopes,
// strings where numbers belong); everything is parsed through the tolerant
// wire DTOs before anyone else sees it.
type BackendGW struct {
	client *httppkg.ResilientClient
}

// NewBackendGW creates the gateway.
func NewBackendGW(client *httppkg.ResilientClient) *BackendGW {
	return &BackendGW{client: client}
}

// CreateRequest posts a new pending request.
func (g *BackendGW) CreateRequest(ctx context.Context, payload *models.RequestPayload) (*models.RequestSnapshot, error) {
	data, err := g.client.Do(ctx, http.MethodPost, g.url("/preSolicitacao"), payload, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var snap models.RequestSnapshot
	if err := utils.ParseJSONResponse(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse create response: %w", err)
	}
	return &snap, nil
}

// GetRequest polls the pre-request snapshot by id.
func (g *BackendGW) GetRequest(ctx context.Context, requestID string) (*models.RequestSnapshot, error) {
	body := map[string]string{"id_Solicitacao": requestID}
	data, err := g.client.Do(ctx, http.MethodPost, g.url("/solicitacao"), body, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch request %s: %w", requestID, err)
	}

	var snap models.RequestSnapshot
	if err := utils.ParseJSONResponse(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse request snapshot: %w", err)
	}
	return &snap, nil
}

// GetRide polls the merged corrida snapshot, validation codes included.
func (g *BackendGW) GetRide(ctx context.Context, requestID string) (*models.RideSnapshot, error) {
	u := g.url("/corrida") + "?idSolicitacao=" + url.QueryEscape(requestID)
	data, err := g.client.Do(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ride %s: %w", requestID, err)
	}

	var snap models.RideSnapshot
	if err := utils.ParseJSONResponse(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse ride snapshot: %w", err)
	}
	return &snap, nil
}

// PendingForProvider fetches the provider's inbox.
func (g *BackendGW) PendingForProvider(ctx context.Context, providerID string) ([]models.RequestSnapshot, error) {
	u := g.url("/popupsolicitacao") + "?id_guincho=" + url.QueryEscape(providerID)
	data, err := g.client.Do(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider inbox: %w", err)
	}

	var snaps []models.RequestSnapshot
	if err := utils.ParseJSONResponse(data, &snaps); err != nil {
		return nil, fmt.Errorf("failed to parse provider inbox: %w", err)
	}
	return snaps, nil
}

// UpdateRequestStatus applies a decision to the pre-request.
func (g *BackendGW) UpdateRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	payload := models.StatusUpdatePayload{RequestID: requestID, Status: string(status)}
	if _, err := g.client.Do(ctx, http.MethodPut, g.url("/updatePreSolicitacao"), payload, nil); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return nil
}

// UpdateRideStatus advances the corrida status.
func (g *BackendGW) UpdateRideStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	payload := models.StatusUpdatePayload{RequestID: requestID, Status: string(status)}
	if _, err := g.client.Do(ctx, http.MethodPut, g.url("/AtualizaCorrida"), payload, nil); err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}
	return nil
}

func (g *BackendGW) url(path string) string {
	return g.client.BaseURL() + path
}
