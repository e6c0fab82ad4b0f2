package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
)

// OutboxMessage is a stored integration event waiting to be published.
type OutboxMessage struct {
	ID         kernel.UUID
	EventType  string
	EntityType string
	EntityID   kernel.UUID
	Payload    []byte
	OccurredAt time.Time
}

// Outbox stores lifecycle events in the same transaction as the state change
// that raised them.
type Outbox interface {
	Add(ctx context.Context, event services.LifecycleEvent) error

	// ClaimUnpublished leases up to limit unpublished messages, oldest first,
	// until now+lease. Messages under another relay's unexpired lease are
	// skipped, so the lease outlives the transaction that took it.
	ClaimUnpublished(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
