package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and deleting order entities
// together with their items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are reconciled against the stored set: new items are inserted,
	// changed items are updated, and missing items are removed.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate retrieves an order aggregate by its unique identifier
	// and acquires an exclusive row lock held until the transaction ends.
	// If another transaction already holds the lock and it cannot be
	// acquired within the configured timeout, a ConcurrencyConflictError
	// is returned.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order aggregate and all of its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
