package matching

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// MatchRepo is the provider presence registry. Entries expire on their own;
// a provider that stops pushing locations falls out of the available set
// without anyone cleaning up after it.
type MatchRepo interface {
	// SetOnline registers the provider as available.
	SetOnline(ctx context.Context, provider *models.Provider) error

	// SetOffline removes the provider from the available set.
	SetOffline(ctx context.Context, providerID string) error

	// UpdateLocation stores a location push. Updates older than the stored
	// one are dropped.
	UpdateLocation(ctx context.Context, providerID string, location models.Location) error

	// OnlineProviders returns every provider currently registered as
	// available, with its last known location when one exists.
	OnlineProviders(ctx context.Context) ([]*models.Provider, error)

	// NearbyProviders returns the available providers within radiusKm of
	// origin, nearest first.
	NearbyProviders(ctx context.Context, origin models.Location, radiusKm float64) ([]*models.Provider, error)
}
