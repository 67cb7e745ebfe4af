package commands

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// UpdateProductCommandHandler handles catalog product changes.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// A SKU change is checked for uniqueness against every other product.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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
	prod, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if prod.SKU() != cmd.SKU() {
		taken, skuErr := productRepo.ExistsWithSKU(ctx, cmd.SKU(), cmd.ProductID())
		if skuErr != nil {
			return skuErr
		}
		if taken {
			return product.ErrDuplicateSKU
		}

		if err = prod.ChangeSKU(cmd.SKU()); err != nil {
			return err
		}
	}

	if err = prod.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = prod.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, prod); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
