package nats

import (
	"encoding/json"
	"fmt"

	"github.com/guinchoja/backend/internal/pkg/logger"
)

// Producer publishes JSON messages over an existing NATS client.
type Producer struct {
	client *Client
}

// NewProducer creates a producer on top of an established connection.
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals the message to JSON and sends it to the subject.
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("published message", logger.String("subject", subject))
	return nil
}
