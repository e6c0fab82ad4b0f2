package ports

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
)

// AuditLog is the append-only audit trail. Appends run inside the caller's
// transaction; a failed append must abort it.
type AuditLog interface {
	Append(ctx context.Context, entries []audit.Entry) error

	// ListByEntity returns the entries of one record in insertion order.
	ListByEntity(ctx context.Context, entityType audit.EntityType, entityID kernel.UUID) ([]audit.Entry, error)
}
