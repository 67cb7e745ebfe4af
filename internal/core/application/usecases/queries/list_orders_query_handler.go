package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries straight from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Discount   decimal.Decimal
	Status     string
}

// Handle executes the listing query.
// Applies the optional filters, counts the matching orders for paging
// metadata and returns one page sorted by creation time ascending.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows := make([]orderSummaryRow, 0, query.Size())
	err := h.filtered(ctx, query).
		Select("id", "customer_id", "discount", "status").
		Order("created_at ASC").
		Limit(query.Size()).
		Offset(query.Page() * query.Size()).
		Find(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summary, mapErr := mapOrderSummary(row)
		if mapErr != nil {
			return ListOrdersQueryResponse{}, mapErr
		}
		orders = append(orders, summary)
	}

	return ListOrdersQueryResponse{
		Orders:        orders,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    pageCount(total, query.Size()),
	}, nil
}

// filtered builds a fresh filtered query; Count and Find each get their
// own chain because GORM finalizers mutate the statement.
func (h ListOrdersQueryHandler) filtered(ctx context.Context, query ListOrdersQuery) *gorm.DB {
	q := h.db.WithContext(ctx).Table("orders")

	if status := query.Status(); status != nil {
		q = q.Where("status = ?", status.String())
	}

	if customerID := query.CustomerID(); customerID != nil {
		q = q.Where("customer_id = ?", customerID.Bytes())
	}

	if productID := query.ProductID(); productID != nil {
		q = q.Where(
			"id IN (SELECT order_id FROM order_items WHERE product_id = ?)",
			productID.Bytes(),
		)
	}

	return q
}

func mapOrderSummary(row orderSummaryRow) (OrderSummaryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	discount, err := kernel.NewMoney(row.Discount)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:         id,
		CustomerID: customerID,
		Discount:   discount,
		Status:     row.Status,
	}, nil
}
