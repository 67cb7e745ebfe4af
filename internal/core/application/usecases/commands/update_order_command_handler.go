package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles partial updates of an order.
//
// Status changes take precedence over structural changes: when the update
// carries a status transition, only the transition is applied and any items,
// customer or discount in the same request are dropped. Structural changes
// alone require the order to still be in Created status.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Loads the order under an exclusive lock, applies the status transition
// first, then either persists the status change alone or applies the
// structural changes (items, customer, discount) independently.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	statusChanged := false
	if s := cmd.Status(); s != nil && *s != ord.Status() {
		if err = ord.ChangeStatus(*s); err != nil {
			return err
		}
		statusChanged = true
	}

	if !ord.CanBeModified() && !statusChanged {
		return order.ErrOrderAlreadyProcessed
	}

	// A processed order only accepts the status transition itself; the
	// rest of the request is ignored.
	if ord.CanBeModified() {
		if err = h.applyStructuralChanges(ctx, uow, ord, cmd); err != nil {
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

func (h *UpdateOrderCommandHandler) applyStructuralChanges(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	cmd UpdateOrderCommand,
) error {
	if cmd.HasItems() {
		items, err := buildOrderItems(cmd.Items())
		if err != nil {
			return err
		}

		productRepo := uow.ProductRepository()
		for _, item := range items {
			if _, err = productRepo.Get(ctx, item.ProductID()); err != nil {
				return err
			}
		}

		if err = ord.ReplaceItems(items); err != nil {
			return err
		}
	}

	if customerID := cmd.CustomerID(); customerID != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *customerID); err != nil {
			return err
		}

		if err := ord.ChangeCustomer(*customerID); err != nil {
			return err
		}
	}

	if discount := cmd.Discount(); discount != nil {
		if err := ord.ChangeDiscount(*discount); err != nil {
			return err
		}
	}

	return nil
}
