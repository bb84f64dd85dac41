package gateway

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/models"
	natspkg "github.com/guinchoja/backend/internal/pkg/nats"
)

// DispatchGW publishes lifecycle events over NATS.
type DispatchGW struct {
	producer *natspkg.Producer
}

// NewDispatchGW creates the event gateway.
func NewDispatchGW(producer *natspkg.Producer) *DispatchGW {
	return &DispatchGW{producer: producer}
}

// PublishRequestCreated announces a new pending request.
func (g *DispatchGW) PublishRequestCreated(_ context.Context, event models.RequestEvent) error {
	return g.producer.Publish(constants.SubjectRequestCreated, event)
}

// PublishRequestAccepted announces a provider taking the request.
func (g *DispatchGW) PublishRequestAccepted(_ context.Context, event models.RequestEvent) error {
	return g.producer.Publish(constants.SubjectRequestAccepted, event)
}

// PublishRequestRejected announces a declined request.
func (g *DispatchGW) PublishRequestRejected(_ context.Context, event models.RequestEvent) error {
	return g.producer.Publish(constants.SubjectRequestRejected, event)
}

// PublishRequestCancelled announces a requester withdrawal.
func (g *DispatchGW) PublishRequestCancelled(_ context.Context, event models.RequestEvent) error {
	return g.producer.Publish(constants.SubjectRequestCancelled, event)
}

// PublishRideStarted announces pickup confirmation.
func (g *DispatchGW) PublishRideStarted(_ context.Context, event models.RequestEvent) error {
	return g.producer.Publish(constants.SubjectRideStarted, event)
}

// PublishRideCompleted announces drop-off confirmation. The archiver feeds
// its history table from this subject.
func (g *DispatchGW) PublishRideCompleted(_ context.Context, event models.RequestEvent) error {
	return g.producer.Publish(constants.SubjectRideCompleted, event)
}
