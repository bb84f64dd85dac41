package history

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// HistoryUC defines the interface for the ride archive business logic
type HistoryUC interface {
	// ArchiveCompleted persists a completion event. Redelivered events
	// must not produce duplicate rows.
	ArchiveCompleted(ctx context.Context, event models.RequestEvent) error

	// CompletedRides lists the archive for whichever side the query
	// identifies.
	CompletedRides(ctx context.Context, query models.HistoryQuery) ([]models.CompletedRide, error)
}
