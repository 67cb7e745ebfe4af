package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "SKU-1", "Widget", money(t, "10.00"))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("ExistsWithSKU", mock.Anything, "SKU-1", kernel.UUID{}).Return(false, nil).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_DuplicateSKU(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "SKU-1", "Widget", money(t, "10.00"))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("ExistsWithSKU", mock.Anything, "SKU-1", kernel.UUID{}).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, product.ErrDuplicateSKU)
	productRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_SKUChangeChecked(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	prod, err := product.NewProduct(productID, "SKU-1", "Widget", money(t, "10.00"))
	require.NoError(t, err)

	cmd, err := commands.NewUpdateProductCommand(productID, "SKU-2", "Widget v2", money(t, "12.00"))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(prod, nil).Once(),
		productRepo.On("ExistsWithSKU", mock.Anything, "SKU-2", productID).Return(false, nil).Once(),
		productRepo.On("Update", mock.Anything, prod).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "SKU-2", prod.SKU())
	assert.Equal(t, "Widget v2", prod.Name())
	assert.True(t, prod.Price().IsEqual(money(t, "12.00")))
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_DuplicateSKU(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	prod, err := product.NewProduct(productID, "SKU-1", "Widget", money(t, "10.00"))
	require.NoError(t, err)

	cmd, err := commands.NewUpdateProductCommand(productID, "SKU-2", "Widget", money(t, "10.00"))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(prod, nil).Once(),
		productRepo.On("ExistsWithSKU", mock.Anything, "SKU-2", productID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, product.ErrDuplicateSKU)
	assert.Equal(t, "SKU-1", prod.SKU())
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	prod, err := product.NewProduct(productID, "SKU-1", "Widget", money(t, "10.00"))
	require.NoError(t, err)

	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(prod, nil).Once(),
		productRepo.On("Delete", mock.Anything, productID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
