package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	httppkg "github.com/guinchoja/backend/internal/pkg/http"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/services/dispatch"
)

// DispatchUC implements the request lifecycle on top of the backend of
// record. Every transition is validated against the lifecycle table before
// the backend is called, and the confirmed state is always re-read after a
// successful call; the relay never trusts a locally computed status.
type DispatchUC struct {
	cfg     *models.Config
	repo    dispatch.DispatchRepo
	backend dispatch.BackendGW
	events  dispatch.DispatchGW
	logger  *logger.ZapLogger
}

// NewDispatchUC creates the lifecycle usecase.
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.DispatchRepo,
	backend dispatch.BackendGW,
	events dispatch.DispatchGW,
	log *logger.ZapLogger,
) *DispatchUC {
	return &DispatchUC{
		cfg:     cfg,
		repo:    repo,
		backend: backend,
		events:  events,
		logger:  log,
	}
}

// CreateRequest opens a pending request, enforcing the one-open-request
// rule before the backend round trip.
func (uc *DispatchUC) CreateRequest(ctx context.Context, payload *models.RequestPayload) (*models.ServiceRequest, error) {
	if payload.RequesterID == "" {
		return nil, fmt.Errorf("create request: missing requester id")
	}

	acquired, err := uc.repo.AcquireActive(ctx, payload.RequesterID, "pending")
	if err != nil {
		return nil, fmt.Errorf("failed to check active request: %w", err)
	}
	if !acquired {
		return nil, dispatch.ErrActiveRequest
	}

	snap, err := uc.backend.CreateRequest(ctx, payload)
	if err != nil {
		if relErr := uc.repo.ReleaseActive(ctx, payload.RequesterID); relErr != nil {
			uc.logger.Warn("failed to release active slot after create failure",
				logger.String("requester_id", payload.RequesterID),
				logger.Err(relErr))
		}
		return nil, uc.classify(err)
	}

	req := snap.ToServiceRequest()
	// Re-key the slot to the real id so a later release can verify it.
	if err := uc.repo.RecordActive(ctx, payload.RequesterID, req.ID); err != nil {
		uc.logger.Warn("failed to record active request id",
			logger.String("request_id", req.ID),
			logger.Err(err))
	}

	uc.publish(ctx, uc.events.PublishRequestCreated, req)

	uc.logger.Info("request created",
		logger.String("request_id", req.ID),
		logger.String("requester_id", req.RequesterID),
		logger.String("provider_id", req.ProviderID))
	return req, nil
}

// GetRequest returns the pre-request snapshot.
func (uc *DispatchUC) GetRequest(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	snap, err := uc.backend.GetRequest(ctx, requestID)
	if err != nil {
		return nil, uc.classify(err)
	}
	return snap.ToServiceRequest(), nil
}

// GetRide returns the merged corrida snapshot.
func (uc *DispatchUC) GetRide(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	snap, err := uc.backend.GetRide(ctx, requestID)
	if err != nil {
		return nil, uc.classify(err)
	}
	return snap.ToServiceRequest(), nil
}

// PendingForProvider lists the provider's inbox.
func (uc *DispatchUC) PendingForProvider(ctx context.Context, providerID string) ([]*models.ServiceRequest, error) {
	snaps, err := uc.backend.PendingForProvider(ctx, providerID)
	if err != nil {
		return nil, uc.classify(err)
	}

	reqs := make([]*models.ServiceRequest, 0, len(snaps))
	for i := range snaps {
		req := snaps[i].ToServiceRequest()
		if req.Status != models.StatusPending {
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Decide accepts or rejects a pending request.
func (uc *DispatchUC) Decide(ctx context.Context, requestID string, accept bool) (*models.ServiceRequest, error) {
	target := models.StatusRejected
	if accept {
		target = models.StatusAccepted
	}

	cur, err := uc.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(cur.Status, target, models.ActorProvider); err != nil {
		// A pending request that is no longer pending was decided by
		// someone else between polls.
		if errors.Is(err, dispatch.ErrInvalidTransition) && cur.Status != models.StatusPending {
			return nil, dispatch.ErrRequestTaken
		}
		return nil, err
	}

	if err := uc.backend.UpdateRequestStatus(ctx, requestID, target); err != nil {
		return nil, uc.classify(err)
	}

	confirmed, err := uc.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if confirmed.Status != target {
		// The backend applied someone else's decision first.
		return nil, dispatch.ErrRequestTaken
	}

	if accept {
		uc.publish(ctx, uc.events.PublishRequestAccepted, confirmed)
	} else {
		uc.publish(ctx, uc.events.PublishRequestRejected, confirmed)
		uc.releaseSlot(ctx, confirmed)
	}

	uc.logger.Info("request decided",
		logger.String("request_id", requestID),
		logger.String("status", string(confirmed.Status)))
	return confirmed, nil
}

// Cancel withdraws a request on behalf of its requester.
func (uc *DispatchUC) Cancel(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	cur, err := uc.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(cur.Status, models.StatusCancelled, models.ActorRequester); err != nil {
		return nil, err
	}

	if err := uc.backend.UpdateRequestStatus(ctx, requestID, models.StatusCancelled); err != nil {
		return nil, uc.classify(err)
	}

	confirmed, err := uc.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, uc.events.PublishRequestCancelled, confirmed)
	uc.releaseSlot(ctx, confirmed)

	uc.logger.Info("request cancelled", logger.String("request_id", requestID))
	return confirmed, nil
}

// ConfirmStart moves an accepted ride into transit. The start code the
// provider read out must match the one the backend issued with the ride.
func (uc *DispatchUC) ConfirmStart(ctx context.Context, requestID, code string) (*models.ServiceRequest, error) {
	return uc.confirm(ctx, requestID, code, models.StatusInTransit)
}

// ConfirmEnd completes an in-transit ride against the end code.
func (uc *DispatchUC) ConfirmEnd(ctx context.Context, requestID, code string) (*models.ServiceRequest, error) {
	return uc.confirm(ctx, requestID, code, models.StatusCompleted)
}

func (uc *DispatchUC) confirm(ctx context.Context, requestID, code string, target models.RequestStatus) (*models.ServiceRequest, error) {
	cur, err := uc.GetRide(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(cur.Status, target, models.ActorProvider); err != nil {
		return nil, err
	}

	expected := cur.StartCode
	if target == models.StatusCompleted {
		expected = cur.EndCode
	}
	if expected == "" || code != expected {
		uc.logger.Warn("validation code mismatch",
			logger.String("request_id", requestID),
			logger.String("target", string(target)))
		return nil, dispatch.ErrValidationCode
	}

	if err := uc.backend.UpdateRideStatus(ctx, requestID, target); err != nil {
		return nil, uc.classify(err)
	}

	confirmed, err := uc.GetRide(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if confirmed.Status != target {
		return nil, fmt.Errorf("backend did not apply transition to %s: status is %s", target, confirmed.Status)
	}

	if target == models.StatusCompleted {
		uc.publish(ctx, uc.events.PublishRideCompleted, confirmed)
		uc.releaseSlot(ctx, confirmed)
	} else {
		uc.publish(ctx, uc.events.PublishRideStarted, confirmed)
	}

	uc.logger.Info("ride status advanced",
		logger.String("request_id", requestID),
		logger.String("status", string(confirmed.Status)))
	return confirmed, nil
}

// checkTransition validates the requested transition before the backend is
// ever called.
func checkTransition(from, to models.RequestStatus, actor models.Actor) error {
	if from.IsTerminal() {
		return dispatch.ErrTerminalState
	}
	if !models.CanTransitionBy(from, to, actor) {
		return dispatch.ErrInvalidTransition
	}
	return nil
}

func (uc *DispatchUC) publish(ctx context.Context, fn func(context.Context, models.RequestEvent) error, req *models.ServiceRequest) {
	event := models.RequestEvent{
		EventID:     uuid.NewString(),
		RequestID:   req.ID,
		RequesterID: req.RequesterID,
		ProviderID:  req.ProviderID,
		Status:      req.Status,
		DistanceKm:  req.DistanceKm,
		Price:       req.Price,
		OccurredAt:  time.Now(),
	}
	if req.Destination != nil {
		event.Destination = req.Destination.LatLong()
	}

	if err := fn(ctx, event); err != nil {
		// Event delivery is best effort; the lifecycle call already
		// succeeded at the backend of record.
		uc.logger.Warn("failed to publish lifecycle event",
			logger.String("request_id", req.ID),
			logger.String("status", string(req.Status)),
			logger.Err(err))
	}
}

func (uc *DispatchUC) releaseSlot(ctx context.Context, req *models.ServiceRequest) {
	if req.RequesterID == "" {
		return
	}
	if err := uc.repo.ReleaseActive(ctx, req.RequesterID); err != nil {
		uc.logger.Warn("failed to release active request slot",
			logger.String("requester_id", req.RequesterID),
			logger.Err(err))
	}
}

// classify maps transport-level failures onto the domain taxonomy.
func (uc *DispatchUC) classify(err error) error {
	var httpErr *httppkg.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 404:
			return dispatch.ErrNotFound
		case 409:
			return dispatch.ErrRequestTaken
		}
	}
	return err
}
