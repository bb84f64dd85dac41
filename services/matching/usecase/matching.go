package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/matching"
)

// MatchingUC implements provider matching. The relay keeps its own presence
// registry so ranking does not need a backend round trip, but every push is
// still forwarded so the backend of record stays authoritative.
type MatchingUC struct {
	cfg     *models.Config
	repo    matching.MatchRepo
	backend matching.ProviderGW
	events  matching.MatchGW
	logger  *logger.ZapLogger
}

// NewMatchingUC creates the matching usecase.
func NewMatchingUC(
	cfg *models.Config,
	repo matching.MatchRepo,
	backend matching.ProviderGW,
	events matching.MatchGW,
	log *logger.ZapLogger,
) *MatchingUC {
	return &MatchingUC{
		cfg:     cfg,
		repo:    repo,
		backend: backend,
		events:  events,
		logger:  log,
	}
}

// ActiveProviders lists available providers. The local registry is
// preferred; when it is empty the backend's active list fills in, so the
// relay still answers during its own cold start.
func (uc *MatchingUC) ActiveProviders(ctx context.Context) ([]*models.Provider, error) {
	providers, err := uc.repo.OnlineProviders(ctx)
	if err != nil {
		uc.logger.Warn("presence registry unavailable, falling back to backend",
			logger.Err(err))
	}
	if len(providers) > 0 {
		return providers, nil
	}

	wires, err := uc.backend.ActiveProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active providers: %w", err)
	}

	providers = make([]*models.Provider, 0, len(wires))
	for i := range wires {
		providers = append(providers, wires[i].ToProvider())
	}
	return providers, nil
}

// RankProviders ranks the available providers for a trip. The geo index
// answers the radius query when it has members; the full active list with a
// haversine filter covers the registry's cold start.
func (uc *MatchingUC) RankProviders(ctx context.Context, requester, destination models.Location) ([]models.RankedProvider, error) {
	if radius := uc.cfg.Matching.SearchRadiusKm; radius > 0 {
		nearby, err := uc.repo.NearbyProviders(ctx, requester, radius)
		if err != nil {
			uc.logger.Warn("geo radius query failed, ranking the full active list",
				logger.Err(err))
		} else if len(nearby) > 0 {
			return Rank(uc.cfg.Pricing, requester, destination, nearby), nil
		}
	}

	providers, err := uc.ActiveProviders(ctx)
	if err != nil {
		return nil, err
	}

	ranked := Rank(uc.cfg.Pricing, requester, destination, providers)

	if uc.cfg.Matching.SearchRadiusKm > 0 {
		limited := ranked[:0]
		for _, rp := range ranked {
			if rp.DistanceKm <= uc.cfg.Matching.SearchRadiusKm {
				limited = append(limited, rp)
			}
		}
		ranked = limited
	}
	return ranked, nil
}

// UpdateLocation records a provider location push in the registry and
// forwards it to the backend.
func (uc *MatchingUC) UpdateLocation(ctx context.Context, payload *models.LocationUpdatePayload) error {
	loc, err := models.ParseLatLong(payload.LatLong)
	if err != nil {
		return fmt.Errorf("invalid lat_long: %w", err)
	}
	loc.Timestamp = time.Now()

	key := payload.ProviderID
	if key == "" {
		// Legacy clients only carry their address id; it is just as
		// stable a registry key.
		key = payload.AddressID
	}
	if key == "" {
		return fmt.Errorf("location update carries no identifier")
	}

	if err := uc.repo.UpdateLocation(ctx, key, *loc); err != nil {
		uc.logger.Warn("failed to update presence registry",
			logger.String("provider_id", key),
			logger.Err(err))
	}

	if err := uc.backend.PushLocation(ctx, payload); err != nil {
		return fmt.Errorf("failed to forward location update: %w", err)
	}
	return nil
}

// SetAvailability toggles a provider online or offline.
func (uc *MatchingUC) SetAvailability(ctx context.Context, payload *models.ProviderStatusPayload) error {
	if payload.ProviderID == "" {
		return fmt.Errorf("availability update carries no provider id")
	}

	if payload.Online {
		provider := &models.Provider{
			ID:                 payload.ProviderID,
			Online:             true,
			LastStatusChangeAt: time.Now(),
		}
		if err := uc.repo.SetOnline(ctx, provider); err != nil {
			uc.logger.Warn("failed to register provider online",
				logger.String("provider_id", payload.ProviderID),
				logger.Err(err))
		}
	} else {
		if err := uc.repo.SetOffline(ctx, payload.ProviderID); err != nil {
			uc.logger.Warn("failed to deregister provider",
				logger.String("provider_id", payload.ProviderID),
				logger.Err(err))
		}
	}

	if err := uc.backend.PushStatus(ctx, payload); err != nil {
		return fmt.Errorf("failed to forward availability update: %w", err)
	}

	uc.publishPresence(ctx, payload.ProviderID, payload.Online)

	uc.logger.Info("provider availability changed",
		logger.String("provider_id", payload.ProviderID),
		logger.Bool("online", payload.Online))
	return nil
}

func (uc *MatchingUC) publishPresence(ctx context.Context, providerID string, online bool) {
	event := models.ProviderEvent{
		EventID:    uuid.NewString(),
		ProviderID: providerID,
		Online:     online,
		OccurredAt: time.Now(),
	}

	var err error
	if online {
		err = uc.events.PublishProviderOnline(ctx, event)
	} else {
		err = uc.events.PublishProviderOffline(ctx, event)
	}
	if err != nil {
		uc.logger.Warn("failed to publish presence event",
			logger.String("provider_id", providerID),
			logger.Err(err))
	}
}
