package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/database"
)

// Open requests resolve within the hour in practice; the TTL is a backstop
// so a crashed client cannot wedge its requester forever.
const activeSlotTTL = 2 * time.Hour

// DispatchRepo keeps the one-open-request-per-requester guard in Redis.
type DispatchRepo struct {
	redis *database.RedisClient
}

// NewDispatchRepo creates the guard repository.
func NewDispatchRepo(redisClient *database.RedisClient) *DispatchRepo {
	return &DispatchRepo{redis: redisClient}
}

// AcquireActive claims the requester's slot via SETNX.
func (r *DispatchRepo) AcquireActive(ctx context.Context, requesterID, requestID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyActiveRequest, requesterID)
	ok, err := r.redis.SetNX(ctx, key, requestID, activeSlotTTL)
	if err != nil {
		return false, fmt.Errorf("failed to acquire active slot: %w", err)
	}
	return ok, nil
}

// RecordActive overwrites the slot with the definitive request id.
func (r *DispatchRepo) RecordActive(ctx context.Context, requesterID, requestID string) error {
	key := fmt.Sprintf(constants.KeyActiveRequest, requesterID)
	if err := r.redis.Client().Set(ctx, key, requestID, activeSlotTTL).Err(); err != nil {
		return fmt.Errorf("failed to record active request: %w", err)
	}
	return nil
}

// ActiveRequestID returns the request holding the slot, or "".
func (r *DispatchRepo) ActiveRequestID(ctx context.Context, requesterID string) (string, error) {
	key := fmt.Sprintf(constants.KeyActiveRequest, requesterID)
	id, err := r.redis.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read active slot: %w", err)
	}
	return id, nil
}

// ReleaseActive frees the requester's slot.
func (r *DispatchRepo) ReleaseActive(ctx context.Context, requesterID string) error {
	key := fmt.Sprintf(constants.KeyActiveRequest, requesterID)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release active slot: %w", err)
	}
	return nil
}
