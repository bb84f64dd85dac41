package gateway

import (
	"context"
	"fmt"
	"net/http"

	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
)

// ProviderGW forwards presence traffic to the backend of record.
type ProviderGW struct {
	client *httppkg.ResilientClient
}

// NewProviderGW creates the gateway.
func NewProviderGW(client *httppkg.ResilientClient) *ProviderGW {
	return &ProviderGW{client: client}
}

// ActiveProviders fetches the backend's own online provider list.
func (g *ProviderGW) ActiveProviders(ctx context.Context) ([]models.ProviderWire, error) {
	data, err := g.client.Do(ctx, http.MethodGet, g.client.BaseURL()+"/guinchosativos", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active providers: %w", err)
	}

	var wires []models.ProviderWire
	if err := utils.ParseJSONResponse(data, &wires); err != nil {
		return nil, fmt.Errorf("failed to parse active providers: %w", err)
	}
	return wires, nil
}

// PushLocation forwards a location update.
func (g *ProviderGW) PushLocation(ctx context.Context, payload *models.LocationUpdatePayload) error {
	if _, err := g.client.Do(ctx, http.MethodPut, g.client.BaseURL()+"/updatelocal", payload, nil); err != nil {
		return fmt.Errorf("failed to push location: %w", err)
	}
	return nil
}

// PushStatus forwards an availability toggle.
func (g *ProviderGW) PushStatus(ctx context.Context, payload *models.ProviderStatusPayload) error {
	if _, err := g.client.Do(ctx, http.MethodPut, g.client.BaseURL()+"/updatestatus", payload, nil); err != nil {
		return fmt.Errorf("failed to push status: %w", err)
	}
	return nil
}
