package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the ordering customer, the order lines and an optional
// discount applied to the order total.
//
// Example:
//
//	arg, _ := NewItemArgument(productID, 2, price)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, []ItemArgument{arg}, discount)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []ItemArgument
	discount   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both IDs are constructed, at least one item is supplied
// and the discount is a constructed Money value.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	items []ItemArgument,
	discount kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setDiscount(discount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the order lines to create the order with.
func (c CreateOrderCommand) Items() []ItemArgument {
	return append([]ItemArgument(nil), c.items...)
}

// Discount returns the discount applied to the order total.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemArgument) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]ItemArgument(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setDiscount(discount kernel.Money) error {
	if err := discount.Validate(); err != nil {
		return err
	}

	c.discount = discount
	return nil
}
