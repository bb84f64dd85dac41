package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/database"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/utils"
)

// MatchRepo keeps provider presence in Redis: a geo set for radius queries,
// a hash per provider with the last known state, and a plain set gating
// availability. The hashes carry a TTL so silent providers age out.
type MatchRepo struct {
	cfg    *models.Config
	redis  *database.RedisClient
	logger *logger.ZapLogger
}

// NewMatchRepo creates the presence repository.
func NewMatchRepo(cfg *models.Config, redisClient *database.RedisClient, log *logger.ZapLogger) *MatchRepo {
	return &MatchRepo{cfg: cfg, redis: redisClient, logger: log}
}

func (r *MatchRepo) ttl() time.Duration {
	minutes := r.cfg.Matching.PresenceTTLMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

// SetOnline registers the provider as available.
func (r *MatchRepo) SetOnline(ctx context.Context, provider *models.Provider) error {
	if err := r.redis.SAdd(ctx, constants.KeyOnlineProviders, provider.ID); err != nil {
		return fmt.Errorf("failed to add provider to online set: %w", err)
	}

	fields := map[string]interface{}{
		constants.FieldStatus: "online",
		constants.FieldName:   provider.Name,
		constants.FieldModel:  provider.Model,
		constants.FieldPhone:  provider.Phone,
	}
	key := fmt.Sprintf(constants.KeyProviderLocation, provider.ID)
	if err := r.redis.HSet(ctx, key, fields, r.ttl()); err != nil {
		return fmt.Errorf("failed to store provider state: %w", err)
	}

	if provider.Location != nil {
		return r.UpdateLocation(ctx, provider.ID, *provider.Location)
	}
	return nil
}

// SetOffline removes the provider from the available set and the geo index.
func (r *MatchRepo) SetOffline(ctx context.Context, providerID string) error {
	if err := r.redis.SRem(ctx, constants.KeyOnlineProviders, providerID); err != nil {
		return fmt.Errorf("failed to remove provider from online set: %w", err)
	}
	if err := r.redis.GeoRemove(ctx, constants.KeyProviderGeo, providerID); err != nil {
		return fmt.Errorf("failed to remove provider from geo index: %w", err)
	}
	key := fmt.Sprintf(constants.KeyProviderLocation, providerID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete provider state: %w", err)
	}
	return nil
}

// UpdateLocation stores a location push. Pushes can arrive out of order
// when a client retries; one older than the stored timestamp is dropped.
func (r *MatchRepo) UpdateLocation(ctx context.Context, providerID string, location models.Location) error {
	key := fmt.Sprintf(constants.KeyProviderLocation, providerID)

	stored, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read provider state: %w", err)
	}
	if tsStr, ok := stored[constants.FieldTimestamp]; ok {
		if prev, err := strconv.ParseInt(tsStr, 10, 64); err == nil {
			if location.Timestamp.UnixMilli() < prev {
				r.logger.Debug("dropping stale location update",
					logger.String("provider_id", providerID))
				return nil
			}
		}
	}

	precision := r.cfg.Matching.GeohashPrecision
	if precision == 0 {
		precision = 6
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp.UnixMilli(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(location, precision),
	}
	if err := r.redis.HSet(ctx, key, fields, r.ttl()); err != nil {
		return fmt.Errorf("failed to store provider location: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyProviderGeo, providerID, location.Longitude, location.Latitude); err != nil {
		return fmt.Errorf("failed to index provider location: %w", err)
	}
	return nil
}

// OnlineProviders returns every provider in the available set whose state
// hash has not expired. Expired members are pruned as they are found.
func (r *MatchRepo) OnlineProviders(ctx context.Context) ([]*models.Provider, error) {
	ids, err := r.redis.SMembers(ctx, constants.KeyOnlineProviders)
	if err != nil {
		return nil, fmt.Errorf("failed to list online providers: %w", err)
	}

	providers := make([]*models.Provider, 0, len(ids))
	for _, id := range ids {
		key := fmt.Sprintf(constants.KeyProviderLocation, id)
		fields, err := r.redis.HGetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read provider %s: %w", id, err)
		}
		if len(fields) == 0 {
			// State TTL'd out; the provider went silent.
			if err := r.redis.SRem(ctx, constants.KeyOnlineProviders, id); err != nil {
				r.logger.Warn("failed to prune silent provider",
					logger.String("provider_id", id),
					logger.Err(err))
			}
			continue
		}

		provider := &models.Provider{
			ID:     id,
			Name:   fields[constants.FieldName],
			Model:  fields[constants.FieldModel],
			Phone:  fields[constants.FieldPhone],
			Online: true,
		}
		if loc := parseStoredLocation(fields); loc != nil {
			provider.Location = loc
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

// NearbyProviders queries the geo index for providers within radiusKm of
// origin, nearest first. Members whose state hash has expired are pruned
// from the index as they are found.
func (r *MatchRepo) NearbyProviders(ctx context.Context, origin models.Location, radiusKm float64) ([]*models.Provider, error) {
	hits, err := r.redis.GeoSearch(ctx, constants.KeyProviderGeo, origin.Longitude, origin.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search provider geo index: %w", err)
	}

	providers := make([]*models.Provider, 0, len(hits))
	for _, hit := range hits {
		key := fmt.Sprintf(constants.KeyProviderLocation, hit.Name)
		fields, err := r.redis.HGetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read provider %s: %w", hit.Name, err)
		}
		if len(fields) == 0 {
			if err := r.redis.GeoRemove(ctx, constants.KeyProviderGeo, hit.Name); err != nil {
				r.logger.Warn("failed to prune silent provider from geo index",
					logger.String("provider_id", hit.Name),
					logger.Err(err))
			}
			continue
		}

		provider := &models.Provider{
			ID:     hit.Name,
			Name:   fields[constants.FieldName],
			Model:  fields[constants.FieldModel],
			Phone:  fields[constants.FieldPhone],
			Online: true,
		}
		if loc := parseStoredLocation(fields); loc != nil {
			provider.Location = loc
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

func parseStoredLocation(fields map[string]string) *models.Location {
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil
	}

	loc := &models.Location{Latitude: lat, Longitude: lng}
	if ms, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64); err == nil {
		loc.Timestamp = time.UnixMilli(ms)
	}
	return loc
}
