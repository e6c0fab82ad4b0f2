// Package kafka publishes outbox messages to the lifecycle topic.
package kafka

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	headerEventType  = "event-type"
	headerEntityType = "entity-type"
	headerMessageID  = "message-id"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher writes lifecycle events keyed by entity id, so every event of one
// record lands on the same partition in order.
type Publisher struct {
	writer MessageWriter
}

// NewWriter builds the writer used in production.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}
}

func NewPublisher(writer MessageWriter) (*Publisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer is required")
	}
	return &Publisher{writer: writer}, nil
}

// Publish writes the batch in one call. A failed write returns the error and
// the relay keeps the messages for the next run.
func (p *Publisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, kafka.Message{
			Key:   []byte(m.EntityID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: headerEventType, Value: []byte(m.EventType)},
				{Key: headerEntityType, Value: []byte(m.EntityType)},
				{Key: headerMessageID, Value: []byte(m.ID.String())},
			},
		})
	}
	return p.writer.WriteMessages(ctx, batch...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
