package queries

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	// DefaultPageSize is used when a caller does not specify a page size.
	DefaultPageSize = 20

	// MaxPageSize bounds a single page of results.
	MaxPageSize = 200
)

// ListOrdersQuery retrieves paginated order summaries.
// Filters are optional and combine with AND: status, ordering customer,
// and presence of a product among the order lines. Results are sorted by
// creation time, oldest first.
type ListOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID
	productID  *kernel.UUID
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of order summaries.
// Nil filter pointers mean "no filter". Page numbering starts at zero.
func NewListOrdersQuery(
	status *order.Status,
	customerID, productID *kernel.UUID,
	page, size int,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStatus(status),
		q.setCustomerID(customerID),
		q.setProductID(productID),
		q.setPage(page),
		q.setSize(size),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, or nil.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// ProductID returns the product filter, or nil.
func (q ListOrdersQuery) ProductID() *kernel.UUID {
	return q.productID
}

// Page returns the zero-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersQuery) Size() int {
	return q.size
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	q.status = &s
	return nil
}

func (q *ListOrdersQuery) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	q.customerID = &id
	return nil
}

func (q *ListOrdersQuery) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}

	if err := productID.Validate(); err != nil {
		return err
	}

	id := *productID
	q.productID = &id
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page))
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setSize(size int) error {
	if size == 0 {
		q.size = DefaultPageSize
		return nil
	}

	if size < 0 || size > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}

	q.size = size
	return nil
}

// OrderSummaryResponse is one order in a listing. Summaries carry no line
// detail; fetch the order itself for items and the derived total.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Discount   kernel.Money
	Status     string
}

// ListOrdersQueryResponse is a page of order summaries with paging metadata.
type ListOrdersQueryResponse struct {
	Orders        []OrderSummaryResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
