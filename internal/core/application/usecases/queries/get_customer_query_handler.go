package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler reads a single customer from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single customer reads.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when no customer has the given ID.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var id uuid.UUID
	var name, phone string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	if err := row.Scan(&id, &name, &phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerResponse{}, errs.NewObjectNotFoundError(
				"customer", query.CustomerID().String())
		}
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:    customerID,
		Name:  name,
		Phone: phone,
	}, nil
}
