package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchCustomersQueryHandler reads customer pages from the database.
type SearchCustomersQueryHandler struct {
	db *gorm.DB
}

// NewSearchCustomersQueryHandler creates a handler for customer searches.
func NewSearchCustomersQueryHandler(db *gorm.DB) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{db: db}
}

type customerRow struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// Handle executes the search, sorted by name for stable paging.
func (h SearchCustomersQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomersQuery,
) (SearchCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchCustomersQueryResponse{}, err
	}

	var total int64
	if err := h.filtered(ctx, query).Count(&total).Error; err != nil {
		return SearchCustomersQueryResponse{}, err
	}

	rows := make([]customerRow, 0, query.Size())
	err := h.filtered(ctx, query).
		Select("id", "name", "phone").
		Order("name ASC").
		Limit(query.Size()).
		Offset(query.Page() * query.Size()).
		Find(&rows).Error
	if err != nil {
		return SearchCustomersQueryResponse{}, err
	}

	customers := make([]CustomerResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return SearchCustomersQueryResponse{}, idErr
		}
		customers = append(customers, CustomerResponse{
			ID:    id,
			Name:  row.Name,
			Phone: row.Phone,
		})
	}

	return SearchCustomersQueryResponse{
		Customers:     customers,
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    pageCount(total, query.Size()),
	}, nil
}

func (h SearchCustomersQueryHandler) filtered(
	ctx context.Context,
	query SearchCustomersQuery,
) *gorm.DB {
	q := h.db.WithContext(ctx).Table("customers")
	if query.Search() != "" {
		q = q.Where("name ILIKE ?", "%"+query.Search()+"%")
	}
	return q
}

func pageCount(total int64, size int) int {
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return pages
}
