package usecase

import (
	"math"
	"sort"

	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
)

// Quote computes the price for a trip given the two distance legs: provider
// to requester (legA) and requester to destination (legB). Which legs are
// billed depends on the configured billing mode; price is always
// BaseFare + PerKmRate * billed distance.
func Quote(cfg models.PricingConfig, legAKm, legBKm float64) float64 {
	billed := legAKm + legBKm
	if cfg.BillingMode == models.BillDestination {
		billed = legBKm
	}
	return cfg.BaseFare + cfg.PerKmRate*billed
}

// EtaMinutes estimates travel time for a distance at the configured average
// speed, rounded up to the next whole minute. Rank passes the full trip
// distance here, both legs included.
func EtaMinutes(cfg models.PricingConfig, distanceKm float64) int {
	if cfg.AverageSpeedKmH <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / cfg.AverageSpeedKmH * 60))
}

// Rank orders providers by distance to the requester, ascending, attaching
// the quoted price and ETA for the full trip. It is a pure function:
// identical inputs always produce identical output. Providers without a
// usable location are excluded, never an error; an empty provider set ranks
// to an empty slice.
func Rank(cfg models.PricingConfig, requester, destination models.Location, providers []*models.Provider) []models.RankedProvider {
	legB := utils.CalculateDistance(
		utils.GeoPointFromLocation(requester),
		utils.GeoPointFromLocation(destination),
	)

	ranked := make([]models.RankedProvider, 0, len(providers))
	for _, p := range providers {
		if p == nil || p.Location == nil {
			continue
		}
		legA := utils.CalculateDistance(
			utils.GeoPointFromLocation(*p.Location),
			utils.GeoPointFromLocation(requester),
		)
		total := legA + legB
		ranked = append(ranked, models.RankedProvider{
			Provider:        *p,
			DistanceKm:      legA,
			TotalDistanceKm: total,
			Price:           Quote(cfg, legA, legB),
			EtaMinutes:      EtaMinutes(cfg, total),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}
