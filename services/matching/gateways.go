package matching

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// ProviderGW is the matching slice of the backend of record: the legacy
// endpoints the relay keeps in sync while it maintains its own registry.
type ProviderGW interface {
	ActiveProviders(ctx context.Context) ([]models.ProviderWire, error)
	PushLocation(ctx context.Context, payload *models.LocationUpdatePayload) error
	PushStatus(ctx context.Context, payload *models.ProviderStatusPayload) error
}

// MatchGW publishes presence events for downstream consumers.
type MatchGW interface {
	PublishProviderOnline(ctx context.Context, event models.ProviderEvent) error
	PublishProviderOffline(ctx context.Context, event models.ProviderEvent) error
}
