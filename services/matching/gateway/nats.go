package gateway

import (
	"context"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/models"
	natspkg "github.com/guinchoja/backend/internal/pkg/nats"
)

// MatchGW publishes presence events over NATS.
type MatchGW struct {
	producer *natspkg.Producer
}

// NewMatchGW creates the event gateway.
func NewMatchGW(producer *natspkg.Producer) *MatchGW {
	return &MatchGW{producer: producer}
}

// PublishProviderOnline announces a provider joining the pool.
func (g *MatchGW) PublishProviderOnline(_ context.Context, event models.ProviderEvent) error {
	return g.producer.Publish(constants.SubjectProviderOnline, event)
}

// PublishProviderOffline announces a provider leaving the pool.
func (g *MatchGW) PublishProviderOffline(_ context.Context, event models.ProviderEvent) error {
	return g.producer.Publish(constants.SubjectProviderOffline, event)
}
