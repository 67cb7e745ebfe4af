package commands

import (
	"context"
)

// DeleteOrderItemCommandHandler removes a single order line.
// Removing the last line is allowed; the order itself remains.
type DeleteOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderItemCommandHandler creates a handler for order line removal.
func NewDeleteOrderItemCommandHandler(uowFactory OrderUoWFactory) DeleteOrderItemCommandHandler {
	return DeleteOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete item command.
// Loads the order under an exclusive lock and removes the addressed line.
// Fails when the order has already been processed or the line is absent.
func (h *DeleteOrderItemCommandHandler) Handle(ctx context.Context, cmd DeleteOrderItemCommand) error {
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

	if err = ord.RemoveItem(cmd.ProductID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
