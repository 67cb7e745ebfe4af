package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is an order line owned exclusively by its Order. It has no independent
// lifecycle: it is created when added to an order and destroyed when removed
// or when the order is deleted.
//
// The price is a snapshot of the product's unit price at the time the item
// was added; later catalog price changes do not affect it.
type Item struct {
	// id is the unique identifier for the item row
	id kernel.UUID

	// productID references the product in the catalog (weak reference)
	productID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// price is the unit price snapshot taken when the item was added
	price kernel.Money

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new order line for the given product with a snapshot price.
// Quantity must be positive and price must be a constructed Money value.
func NewItem(productID kernel.UUID, quantity int, price kernel.Money) (*Item, error) {
	item := &Item{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence with its original identity.
func RestoreItem(id, productID kernel.UUID, quantity int, price kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(productID, quantity, price)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the referenced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the snapshot unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i *Item) Subtotal() kernel.Money {
	return i.price.MulInt(i.quantity)
}

// update replaces quantity and price in place, preserving item identity.
// Only the owning Order may call it.
func (i *Item) update(quantity int, price kernel.Money) error {
	return errors.Join(
		i.setQuantity(quantity),
		i.setPrice(price),
	)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
