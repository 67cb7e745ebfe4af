package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrItemArgumentIsNotConstructed = errors.New(
		"ItemArgument must be created via NewItemArgument constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemArgument carries a single order line as supplied by a caller:
// the product to order, how many units, and the unit price to snapshot.
type ItemArgument struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewItemArgument creates a validated order line argument.
// The product ID must be constructed, quantity must be positive and the
// price must be a constructed Money value.
func NewItemArgument(productID kernel.UUID, quantity int, price kernel.Money) (ItemArgument, error) {
	arg := ItemArgument{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		arg.setProductID(productID),
		arg.setQuantity(quantity),
		arg.setPrice(price),
	); err != nil {
		return ItemArgument{}, err
	}

	return arg, nil
}

// Validate ensures the argument was created through the constructor.
func (a ItemArgument) Validate() error {
	return a.guard.Validate(ErrItemArgumentIsNotConstructed)
}

// ProductID returns the ordered product's identifier.
func (a ItemArgument) ProductID() kernel.UUID {
	return a.productID
}

// Quantity returns the number of units ordered.
func (a ItemArgument) Quantity() int {
	return a.quantity
}

// Price returns the unit price to snapshot on the order line.
func (a ItemArgument) Price() kernel.Money {
	return a.price
}

func (a *ItemArgument) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	a.productID = productID
	return nil
}

func (a *ItemArgument) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	a.quantity = quantity
	return nil
}

func (a *ItemArgument) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	a.price = price
	return nil
}

// buildOrderItems converts item arguments into order items, rejecting
// batches that name the same product twice.
func buildOrderItems(args []ItemArgument) ([]*order.Item, error) {
	seen := make(map[kernel.UUID]bool, len(args))
	items := make([]*order.Item, 0, len(args))

	for _, arg := range args {
		if err := arg.Validate(); err != nil {
			return nil, err
		}

		if seen[arg.ProductID()] {
			return nil, order.NewDuplicateProductError(arg.ProductID())
		}
		seen[arg.ProductID()] = true

		item, err := order.NewItem(arg.ProductID(), arg.Quantity(), arg.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
