package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/guinchoja/backend/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject, optionally as
// part of a queue group.
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
	subject      string
}

// NewConsumer subscribes to a subject on an established connection. When
// queueGroup is non-empty the subscription joins that queue group.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	msgHandler := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("failed to handle message",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	}

	var sub *nats.Subscription
	var err error
	if queueGroup != "" {
		sub, err = client.QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		sub, err = client.Subscribe(subject, msgHandler)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	return &Consumer{
		client:       client,
		subscription: sub,
		subject:      subject,
	}, nil
}

// Stop unsubscribes from the subject.
func (c *Consumer) Stop() {
	if c.subscription != nil {
		if err := c.subscription.Unsubscribe(); err != nil {
			logger.Warn("failed to unsubscribe",
				logger.String("subject", c.subject),
				logger.Err(err))
		}
	}
}
