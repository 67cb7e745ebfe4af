package commands

import (
	"context"
)

// UpdateOrderItemCommandHandler changes quantity and price of one order line.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemCommandHandler creates a handler for order line updates.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update item command.
// Loads the order under an exclusive lock and updates the line in place,
// preserving its identity. Fails when the order has already been processed
// or when no line for the product exists.
func (h *UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
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

	if err = ord.UpdateItem(cmd.ProductID(), cmd.Quantity(), cmd.Price()); err != nil {
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
