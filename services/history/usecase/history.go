package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/history"
)

// HistoryUC implements the ride archive.
type HistoryUC struct {
	repo   history.HistoryRepo
	logger *logger.ZapLogger
}

// NewHistoryUC creates the archive usecase.
func NewHistoryUC(repo history.HistoryRepo, log *logger.ZapLogger) *HistoryUC {
	return &HistoryUC{repo: repo, logger: log}
}

// ArchiveCompleted persists a completion event. The repository drops
// duplicate request ids, so redeliveries are harmless.
func (uc *HistoryUC) ArchiveCompleted(ctx context.Context, event models.RequestEvent) error {
	if event.RequestID == "" {
		return fmt.Errorf("completion event carries no request id")
	}

	ride := &models.CompletedRide{
		ID:          uuid.NewString(),
		RequestID:   event.RequestID,
		RequesterID: event.RequesterID,
		ProviderID:  event.ProviderID,
		DistanceKm:  event.DistanceKm,
		Price:       event.Price,
		Destination: event.Destination,
		CompletedAt: event.OccurredAt,
	}

	if err := uc.repo.InsertCompleted(ctx, ride); err != nil {
		return err
	}

	uc.logger.Info("ride archived",
		logger.String("request_id", event.RequestID),
		logger.String("provider_id", event.ProviderID))
	return nil
}

// CompletedRides lists the archive for whichever side the query names.
// Exactly one identifier must be set.
func (uc *HistoryUC) CompletedRides(ctx context.Context, query models.HistoryQuery) ([]models.CompletedRide, error) {
	switch {
	case query.RequesterID != "" && query.ProviderID != "":
		return nil, fmt.Errorf("history query must name one side, not both")
	case query.RequesterID != "":
		return uc.repo.ListByRequester(ctx, query.RequesterID)
	case query.ProviderID != "":
		return uc.repo.ListByProvider(ctx, query.ProviderID)
	default:
		return nil, fmt.Errorf("history query names neither side")
	}
}
