// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the audit log, the outbox and the event publisher.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"
)

// ApplicationRepository defines the persistence contract for verification applications.
type ApplicationRepository interface {
	// Add persists a new application with its documents.
	Add(ctx context.Context, aggregate *verification.Application) error

	// Update writes the application with a conditional version check, upserts
	// its documents and info requests, and appends new review records.
	// Returns errs.ErrStaleWrite when the stored version has moved on.
	Update(ctx context.Context, aggregate *verification.Application) error

	// Get retrieves an application with its documents, review history and info requests.
	Get(ctx context.Context, id kernel.UUID) (*verification.Application, error)

	// ListWithOverdueInfoRequests returns up to limit application ids that hold
	// an open info request due before now.
	ListWithOverdueInfoRequests(ctx context.Context, now time.Time, limit int) ([]kernel.UUID, error)
}
