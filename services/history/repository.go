package history

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// HistoryRepo defines the interface for archive data access
type HistoryRepo interface {
	// InsertCompleted stores a completed ride; inserting the same
	// request id twice is a no-op.
	InsertCompleted(ctx context.Context, ride *models.CompletedRide) error

	// ListByRequester returns the requester's completed rides, newest
	// first.
	ListByRequester(ctx context.Context, requesterID string) ([]models.CompletedRide, error)

	// ListByProvider returns the provider's completed rides, newest
	// first.
	ListByProvider(ctx context.Context, providerID string) ([]models.CompletedRide, error)
}
