package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrSearchCustomersQueryIsNotConstructed = errors.New(
	"SearchCustomersQuery must be created via NewSearchCustomersQuery constructor",
)

// SearchCustomersQuery retrieves paginated customers, optionally filtered
// by a case-insensitive name fragment.
type SearchCustomersQuery struct {
	search string
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewSearchCustomersQuery creates a customer search query.
// An empty search string matches every customer.
func NewSearchCustomersQuery(search string, page, size int) (SearchCustomersQuery, error) {
	q := SearchCustomersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPage(page),
		q.setSize(size),
	); err != nil {
		return SearchCustomersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchCustomersQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomersQueryIsNotConstructed)
}

// Search returns the name fragment filter, possibly empty.
func (q SearchCustomersQuery) Search() string {
	return q.search
}

// Page returns the zero-based page number.
func (q SearchCustomersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q SearchCustomersQuery) Size() int {
	return q.size
}

func (q *SearchCustomersQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page))
	}

	q.page = page
	return nil
}

func (q *SearchCustomersQuery) setSize(size int) error {
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

// SearchCustomersQueryResponse is a page of customers with paging metadata.
type SearchCustomersQueryResponse struct {
	Customers     []CustomerResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
