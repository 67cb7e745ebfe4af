package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a catalog product.
// Price changes never rewrite existing order lines, which keep their
// snapshot prices.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	sku       string
	name      string
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	sku, name string,
	price kernel.Money,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setSKU(sku),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SKU returns the new stock keeping unit code.
func (c UpdateProductCommand) SKU() string {
	return c.sku
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Price returns the new catalog unit price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return product.ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return product.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
