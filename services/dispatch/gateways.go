package dispatch

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// BackendGW is the relay's view of the backend of record. Every write is a
// single idempotent call; confirmed state is always re-read, never computed
// locally.
type BackendGW interface {
	CreateRequest(ctx context.Context, payload *models.RequestPayload) (*models.RequestSnapshot, error)
	GetRequest(ctx context.Context, requestID string) (*models.RequestSnapshot, error)
	GetRide(ctx context.Context, requestID string) (*models.RideSnapshot, error)
	PendingForProvider(ctx context.Context, providerID string) ([]models.RequestSnapshot, error)
	UpdateRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) error
	UpdateRideStatus(ctx context.Context, requestID string, status models.RequestStatus) error
}

// DispatchGW publishes lifecycle events for downstream consumers.
type DispatchGW interface {
	PublishRequestCreated(ctx context.Context, event models.RequestEvent) error
	PublishRequestAccepted(ctx context.Context, event models.RequestEvent) error
	PublishRequestRejected(ctx context.Context, event models.RequestEvent) error
	PublishRequestCancelled(ctx context.Context, event models.RequestEvent) error
	PublishRideStarted(ctx context.Context, event models.RequestEvent) error
	PublishRideCompleted(ctx context.Context, event models.RequestEvent) error
}
