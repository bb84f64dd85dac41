package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/guinchoja/backend/internal/pkg/database"
	"github.com/guinchoja/backend/internal/pkg/models"
)

// HistoryRepo persists completed rides in the archive database.
type HistoryRepo struct {
	db *sqlx.DB
}

// NewHistoryRepo creates the archive repository.
func NewHistoryRepo(client *database.PostgresClient) *HistoryRepo {
	return &HistoryRepo{db: client.DB}
}

// InsertCompleted stores a completed ride. NATS delivers at least once, so
// the insert ignores request ids already archived.
func (r *HistoryRepo) InsertCompleted(ctx context.Context, ride *models.CompletedRide) error {
	query := `
		INSERT INTO completed_rides (
			id, request_id, requester_id, provider_id,
			distance_km, price, destination, completed_at
		) VALUES (
			:id, :request_id, :requester_id, :provider_id,
			:distance_km, :price, :destination, :completed_at
		)
		ON CONFLICT (request_id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, ride); err != nil {
		return fmt.Errorf("failed to archive ride %s: %w", ride.RequestID, err)
	}
	return nil
}

// ListByRequester returns the requester's completed rides, newest first.
func (r *HistoryRepo) ListByRequester(ctx context.Context, requesterID string) ([]models.CompletedRide, error) {
	query := `
		SELECT id, request_id, requester_id, provider_id,
		       distance_km, price, destination, completed_at
		FROM completed_rides
		WHERE requester_id = $1
		ORDER BY completed_at DESC
	`

	rides := []models.CompletedRide{}
	if err := r.db.SelectContext(ctx, &rides, query, requesterID); err != nil {
		return nil, fmt.Errorf("failed to list rides for requester %s: %w", requesterID, err)
	}
	return rides, nil
}

// ListByProvider returns the provider's completed rides, newest first.
func (r *HistoryRepo) ListByProvider(ctx context.Context, providerID string) ([]models.CompletedRide, error) {
	query := `
		SELECT id, request_id, requester_id, provider_id,
		       distance_km, price, destination, completed_at
		FROM completed_rides
		WHERE provider_id = $1
		ORDER BY completed_at DESC
	`

	rides := []models.CompletedRide{}
	if err := r.db.SelectContext(ctx, &rides, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list rides for provider %s: %w", providerID, err)
	}
	return rides, nil
}
