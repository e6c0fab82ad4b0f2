package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// DefaultPublishTimeout bounds one broker call when no timeout is configured.
const DefaultPublishTimeout = 10 * time.Second

// RelayOutboxCommandHandler moves stored lifecycle events to the broker in three
// steps: lease a batch and commit, publish with no transaction open, then mark
// the batch published in a second transaction. A failed publish leaves the rows
// unpublished and they are claimed again once the lease expires, so delivery is
// at least once.
type RelayOutboxCommandHandler struct {
	uowFactory     OutboxUoWFactory
	publisher      ports.EventPublisher
	publishTimeout time.Duration
}

// NewRelayOutboxCommandHandler leases each batch for twice publishTimeout.
func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	publishTimeout time.Duration,
) RelayOutboxCommandHandler {
	if publishTimeout <= 0 {
		publishTimeout = DefaultPublishTimeout
	}
	return RelayOutboxCommandHandler{uowFactory: uowFactory, publisher: publisher, publishTimeout: publishTimeout}
}

// Handle returns the number of messages published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var messages []ports.OutboxMessage
	err := h.inTransaction(ctx, func(outbox ports.Outbox) error {
		var claimErr error
		messages, claimErr = outbox.ClaimUnpublished(ctx, cmd.BatchSize(), time.Now(), 2*h.publishTimeout)
		return claimErr
	})
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	publishCtx, cancel := context.WithTimeout(ctx, h.publishTimeout)
	defer cancel()
	if err = h.publisher.Publish(publishCtx, messages); err != nil {
		return 0, fmt.Errorf("publish %d outbox messages: %w", len(messages), err)
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	err = h.inTransaction(ctx, func(outbox ports.Outbox) error {
		return outbox.MarkPublished(ctx, ids, time.Now())
	})
	if err != nil {
		return 0, err
	}

	return len(messages), nil
}

func (h RelayOutboxCommandHandler) inTransaction(ctx context.Context, fn func(ports.Outbox) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.Outbox()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
