package matching

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// MatchingUC defines the interface for provider matching business logic
type MatchingUC interface {
	// ActiveProviders returns the currently available providers without
	// any ranking applied.
	ActiveProviders(ctx context.Context) ([]*models.Provider, error)

	// RankProviders returns the available providers ordered by distance to
	// the requester, each carrying the quoted price and ETA for a trip to
	// the destination.
	RankProviders(ctx context.Context, requester, destination models.Location) ([]models.RankedProvider, error)

	// UpdateLocation records a provider location push and forwards it to
	// the backend of record.
	UpdateLocation(ctx context.Context, payload *models.LocationUpdatePayload) error

	// SetAvailability toggles a provider online or offline.
	SetAvailability(ctx context.Context, payload *models.ProviderStatusPayload) error
}
