package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Every field except the order ID is optional: nil pointers and empty item
// slices mean "leave unchanged".
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	items      []ItemArgument
	customerID *kernel.UUID
	discount   *kernel.Money
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// Optional fields are passed as pointers; nil means the field is not part
// of this update. An empty or nil items slice leaves the items unchanged.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	items []ItemArgument,
	customerID *kernel.UUID,
	discount *kernel.Money,
	status *order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setCustomerID(customerID),
		cmd.setDiscount(discount),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement order lines, or an empty slice when the
// items are not part of this update.
func (c UpdateOrderCommand) Items() []ItemArgument {
	return append([]ItemArgument(nil), c.items...)
}

// HasItems reports whether this update replaces the order lines.
func (c UpdateOrderCommand) HasItems() bool {
	return len(c.items) > 0
}

// CustomerID returns the new customer, or nil when unchanged.
func (c UpdateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Discount returns the new discount, or nil when unchanged.
func (c UpdateOrderCommand) Discount() *kernel.Money {
	return c.discount
}

// Status returns the requested status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []ItemArgument) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]ItemArgument(nil), items...)
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	c.customerID = &id
	return nil
}

func (c *UpdateOrderCommand) setDiscount(discount *kernel.Money) error {
	if discount == nil {
		return nil
	}

	if err := discount.Validate(); err != nil {
		return err
	}

	d := *discount
	c.discount = &d
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	c.status = &s
	return nil
}
