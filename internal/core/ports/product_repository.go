package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// SKU uniqueness is enforced at this boundary since it requires knowledge
// of the whole product collection.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ExistsWithSKU reports whether any product other than the one with
	// excludeID already uses the given SKU. Pass a zero UUID to check
	// against all products.
	ExistsWithSKU(ctx context.Context, sku string, excludeID kernel.UUID) (bool, error)

	// Delete removes a product aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
