package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderItemCommandIsNotConstructed = errors.New(
	"DeleteOrderItemCommand must be created via NewDeleteOrderItemCommand constructor",
)

// DeleteOrderItemCommand represents a request to remove a single order line,
// addressed by its product.
type DeleteOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderItemCommand creates a command to remove an order line.
func NewDeleteOrderItemCommand(orderID, productID kernel.UUID) (DeleteOrderItemCommand, error) {
	cmd := DeleteOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return DeleteOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the line.
func (c DeleteOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product addressing the line to remove.
func (c DeleteOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
