package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrAddOrderItemsCommandIsNotConstructed = errors.New(
	"AddOrderItemsCommand must be created via NewAddOrderItemsCommand constructor",
)

// AddOrderItemsCommand represents a request to append order lines to an
// existing order.
type AddOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []ItemArgument

	guard guard.ConstructorGuard
}

// NewAddOrderItemsCommand creates a command to append items to an order.
// Requires a constructed order ID and at least one item.
func NewAddOrderItemsCommand(orderID kernel.UUID, items []ItemArgument) (AddOrderItemsCommand, error) {
	cmd := AddOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return AddOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the order lines to append.
func (c AddOrderItemsCommand) Items() []ItemArgument {
	return append([]ItemArgument(nil), c.items...)
}

func (c *AddOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemsCommand) setItems(items []ItemArgument) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]ItemArgument(nil), items...)
	return nil
}
