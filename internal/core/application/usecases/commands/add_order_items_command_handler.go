package commands

import (
	"context"
)

// AddOrderItemsCommandHandler appends order lines to an existing order.
// The whole batch is rejected when any line duplicates a product already
// on the order or another line in the same batch.
type AddOrderItemsCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemsCommandHandler creates a handler for appending order items.
func NewAddOrderItemsCommandHandler(uowFactory UoWFactory) AddOrderItemsCommandHandler {
	return AddOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add items command.
// Loads the order under an exclusive lock, verifies it can still be
// modified, resolves every referenced product and appends the lines.
func (h *AddOrderItemsCommandHandler) Handle(ctx context.Context, cmd AddOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, arg := range cmd.Items() {
		if _, err = productRepo.Get(ctx, arg.ProductID()); err != nil {
			return err
		}

		if err = ord.AddItem(arg.ProductID(), arg.Quantity(), arg.Price()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
