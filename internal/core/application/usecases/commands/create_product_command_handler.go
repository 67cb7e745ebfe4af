package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds products to the catalog.
// SKU uniqueness is checked against the whole catalog inside the
// transaction.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Rejects the product when another catalog entry already uses its SKU.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	taken, err := productRepo.ExistsWithSKU(ctx, cmd.SKU(), kernel.UUID{})
	if err != nil {
		return err
	}
	if taken {
		return product.ErrDuplicateSKU
	}

	newProduct, err := product.NewProduct(cmd.ProductID(), cmd.SKU(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
