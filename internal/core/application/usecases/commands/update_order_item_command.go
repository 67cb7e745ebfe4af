package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand represents a request to change the quantity and
// price of a single order line, addressed by its product.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to update a single order line.
func NewUpdateOrderItemCommand(
	orderID, productID kernel.UUID,
	quantity int,
	price kernel.Money,
) (UpdateOrderItemCommand, error) {
	cmd := UpdateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setPrice(price),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the line.
func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product addressing the line to update.
func (c UpdateOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new number of units.
func (c UpdateOrderItemCommand) Quantity() int {
	return c.quantity
}

// Price returns the new unit price.
func (c UpdateOrderItemCommand) Price() kernel.Money {
	return c.price
}

func (c *UpdateOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *UpdateOrderItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
