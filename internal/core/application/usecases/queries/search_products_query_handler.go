package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SearchProductsQueryHandler reads catalog pages from the database.
type SearchProductsQueryHandler struct {
	db *gorm.DB
}

// NewSearchProductsQueryHandler creates a handler for product searches.
func NewSearchProductsQueryHandler(db *gorm.DB) SearchProductsQueryHandler {
	return SearchProductsQueryHandler{db: db}
}

type productRow struct {
	ID    uuid.UUID
	SKU   string
	Name  string
	Price decimal.Decimal
}

// Handle executes the search, sorted by SKU for stable paging.
func (h SearchProductsQueryHandler) Handle(
	ctx context.Context,
	query SearchProductsQuery,
) (SearchProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchProductsQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return SearchProductsQueryResponse{}, err
	}

	rows := make([]productRow, 0, query.Size())
	err := h.filtered(ctx, query).
		Select("id", "sku", "name", "price").
		Order("sku ASC").
		Limit(query.Size()).
		Offset(query.Page() * query.Size()).
		Find(&rows).Error
	if err != nil {
		return SearchProductsQueryResponse{}, err
	}

	products := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return SearchProductsQueryResponse{}, idErr
		}

		price, priceErr := kernel.NewMoney(row.Price)
		if priceErr != nil {
			return SearchProductsQueryResponse{}, priceErr
		}

		products = append(products, ProductResponse{
			ID:    id,
			SKU:   row.SKU,
			Name:  row.Name,
			Price: price,
		})
	}

	return SearchProductsQueryResponse{
		Products:      products,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    pageCount(total, query.Size()),
	}, nil
}

func (h SearchProductsQueryHandler) filtered(
	ctx context.Context,
	query SearchProductsQuery,
) *gorm.DB {
	q := h.db.WithContext(ctx).Table("products")
	if query.Search() != "" {
		pattern := "%" + query.Search() + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	return q
}
