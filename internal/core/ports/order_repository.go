package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its first history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if the stored version still equals
	// aggregate.Revision().Expected(), and appends the history entries added
	// since load. Returns errs.ErrStaleWrite when another writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its full status history.
	// Returns errs.ErrObjectNotFound when there is no such order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
