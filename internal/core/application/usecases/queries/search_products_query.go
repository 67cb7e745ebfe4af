package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrSearchProductsQueryIsNotConstructed = errors.New(
	"SearchProductsQuery must be created via NewSearchProductsQuery constructor",
)

// SearchProductsQuery retrieves paginated catalog products, optionally
// filtered by a case-insensitive fragment of the name or SKU.
type SearchProductsQuery struct {
	search string
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewSearchProductsQuery creates a product search query.
// An empty search string matches every product.
func NewSearchProductsQuery(search string, page, size int) (SearchProductsQuery, error) {
	q := SearchProductsQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPage(page),
		q.setSize(size),
	); err != nil {
		return SearchProductsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchProductsQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductsQueryIsNotConstructed)
}

// Search returns the name or SKU fragment filter, possibly empty.
func (q SearchProductsQuery) Search() string {
	return q.search
}

// Page returns the zero-based page number.
func (q SearchProductsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q SearchProductsQuery) Size() int {
	return q.size
}

func (q *SearchProductsQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page))
	}

	q.page = page
	return nil
}

func (q *SearchProductsQuery) setSize(size int) error {
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

// SearchProductsQueryResponse is a page of products with paging metadata.
type SearchProductsQueryResponse struct {
	Products      []ProductResponse
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
