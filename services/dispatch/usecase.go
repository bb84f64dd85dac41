package dispatch

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// DispatchUC defines the interface for request lifecycle business logic
type DispatchUC interface {
	// CreateRequest opens a pending request for the requester. A requester
	// may hold at most one open request at a time.
	CreateRequest(ctx context.Context, payload *models.RequestPayload) (*models.ServiceRequest, error)

	// GetRequest returns the pre-request snapshot by id.
	GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// GetRide returns the merged corrida snapshot, validation codes included.
	GetRide(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// PendingForProvider lists requests waiting on the given provider.
	PendingForProvider(ctx context.Context, providerID string) ([]*models.ServiceRequest, error)

	// Decide accepts or rejects a pending request on behalf of a provider.
	Decide(ctx context.Context, requestID string, accept bool) (*models.ServiceRequest, error)

	// Cancel withdraws a request on behalf of its requester.
	Cancel(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// ConfirmStart moves an accepted ride into transit after checking the
	// start validation code.
	ConfirmStart(ctx context.Context, requestID, code string) (*models.ServiceRequest, error)

	// ConfirmEnd completes an in-transit ride after checking the end
	// validation code.
	ConfirmEnd(ctx context.Context, requestID, code string) (*models.ServiceRequest, error)
}
