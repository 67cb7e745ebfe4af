// Package product provides the catalog product entity consumed by order
// commands. Products are an external collaborator of the order aggregate:
// an order item copies the product's unit price at the time it is added and
// never re-reads it.
package product

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Domain errors for product operations.
var (
	// ErrSKUIsRequired is returned when attempting to create a product without a SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrDuplicateSKU is the sentinel for SKU uniqueness violations,
	// enforced by the repository against the catalog.
	ErrDuplicateSKU = errors.New("sku already exists")
)

// Product represents a catalog entry with a current unit price.
// The catalog price is advisory for new order items; items snapshot it on
// addition, so changing it here never rewrites existing orders.
type Product struct {
	id    kernel.UUID
	sku   string
	name  string
	price kernel.Money

	isConstructed bool
}

// NewProduct creates a product with a non-empty SKU and name and a
// constructed, non-negative price.
func NewProduct(id kernel.UUID, sku, name string, price kernel.Money) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, sku, name string, price kernel.Money) (*Product, error) {
	return NewProduct(id, sku, name, price)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the product's stock keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ChangeSKU replaces the product's SKU. Catalog-wide uniqueness is enforced
// by the repository, not here.
func (p *Product) ChangeSKU(sku string) error {
	return p.setSKU(sku)
}

// Rename replaces the product's display name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice replaces the product's current unit price.
// Existing order items keep their snapshot prices.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
