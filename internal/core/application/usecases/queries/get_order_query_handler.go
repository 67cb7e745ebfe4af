package queries

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces for the one query that reads through the
// repository instead of the database. They mirror the command-side
// abstractions so the same implementation serves both.
type (
	// OrderUoW provides a transaction with access to the order repository.
	OrderUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		OrderRepository() ports.OrderRepository
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// GetOrderQueryHandler loads a single order through the unit of work.
// It uses the same locked read as the mutation path, so a read of an
// order another transaction is changing waits for the lock and can
// surface a concurrency conflict instead of returning a torn view.
type GetOrderQueryHandler struct {
	uowFactory OrderUoWFactory
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(uowFactory OrderUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query and maps the aggregate to its response view.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().GetForUpdate(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(ord.Items()))
	for _, item := range ord.Items() {
		items = append(items, OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Subtotal:  item.Subtotal(),
		})
	}

	return GetOrderQueryResponse{
		ID:         ord.ID(),
		CustomerID: ord.CustomerID(),
		Items:      items,
		Discount:   ord.Discount(),
		Status:     ord.Status().String(),
		Total:      ord.Total(),
	}, nil
}
