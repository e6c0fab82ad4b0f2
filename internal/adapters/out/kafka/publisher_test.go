package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	publisher "marketplace/internal/adapters/out/kafka"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestNewPublisher_RequiresWriter(t *testing.T) {
	_, err := publisher.NewPublisher(nil)
	require.Error(t, err)
}

func TestPublish_KeysByEntityAndSetsHeaders(t *testing.T) {
	ctx := context.Background()
	writer := &MockWriter{}
	p, err := publisher.NewPublisher(writer)
	require.NoError(t, err)

	msg := ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		EventType:  "order.delivered",
		EntityType: "order",
		EntityID:   kernel.NewUUID(),
		Payload:    []byte(`{"status":"delivered"}`),
		OccurredAt: time.Now(),
	}

	writer.On("WriteMessages", ctx, mock.MatchedBy(func(batch []kafka.Message) bool {
		if len(batch) != 1 {
			return false
		}
		m := batch[0]
		return string(m.Key) == msg.EntityID.String() &&
			string(m.Value) == string(msg.Payload) &&
			len(m.Headers) == 3 &&
			m.Headers[0].Key == "event-type" && string(m.Headers[0].Value) == "order.delivered"
	})).Return(nil).Once()

	require.NoError(t, p.Publish(ctx, []ports.OutboxMessage{msg}))
	writer.AssertExpectations(t)
}

func TestPublish_EmptyBatch_DoesNotWrite(t *testing.T) {
	writer := &MockWriter{}
	p, err := publisher.NewPublisher(writer)
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), nil))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublish_WriteFailure_IsReturned(t *testing.T) {
	writer := &MockWriter{}
	p, err := publisher.NewPublisher(writer)
	require.NoError(t, err)

	brokerDown := errors.New("broker unavailable")
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(brokerDown).Once()

	err = p.Publish(context.Background(), []ports.OutboxMessage{{ID: kernel.NewUUID(), EntityID: kernel.NewUUID()}})
	assert.ErrorIs(t, err, brokerDown)
}

func TestNewWriter(t *testing.T) {
	w := publisher.NewWriter([]string{"localhost:9092"}, "marketplace.lifecycle")
	assert.Equal(t, "marketplace.lifecycle", w.Topic)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
}
