package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductQueryHandler reads a single catalog product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product reads.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when no product has the given ID.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var id uuid.UUID
	var sku, name string
	var price decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			price
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	if err := row.Scan(&id, &sku, &name, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError(
				"product", query.ProductID().String())
		}
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}

	unitPrice, err := kernel.NewMoney(price)
	if err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{
		ID:    productID,
		SKU:   sku,
		Name:  name,
		Price: unitPrice,
	}, nil
}
