package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	natspkg "github.com/guinchoja/backend/internal/pkg/nats"
	"github.com/guinchoja/backend/services/history"
)

// ArchiverHandler consumes ride completion events and feeds the archive.
// It subscribes inside a queue group so multiple archiver instances share
// the stream without double-writing.
type ArchiverHandler struct {
	historyUC history.HistoryUC
	client    *natspkg.Client
	logger    *logger.ZapLogger
	consumer  *natspkg.Consumer
}

// NewArchiverHandler creates the NATS handler.
func NewArchiverHandler(historyUC history.HistoryUC, client *natspkg.Client, log *logger.ZapLogger) *ArchiverHandler {
	return &ArchiverHandler{
		historyUC: historyUC,
		client:    client,
		logger:    log,
	}
}

// InitConsumers subscribes to the completion subject.
func (h *ArchiverHandler) InitConsumers() error {
	consumer, err := natspkg.NewConsumer(
		h.client,
		constants.SubjectRideCompleted,
		constants.QueueGroupArchiver,
		h.handleCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to start archiver consumer: %w", err)
	}
	h.consumer = consumer
	return nil
}

// Stop unsubscribes the consumer.
func (h *ArchiverHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *ArchiverHandler) handleCompleted(message []byte) error {
	var event models.RequestEvent
	if err := json.Unmarshal(message, &event); err != nil {
		// A malformed event will never parse on redelivery either; log
		// and drop it.
		h.logger.Error("malformed completion event", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return h.historyUC.ArchiveCompleted(ctx, event)
}
