package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	items := []commands.ItemArgument{itemArg(t, productID, 2, "10.00")}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, money(t, "1.50"))
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Len(t, cmd.Items(), 1)
	assert.True(t, cmd.Discount().IsEqual(money(t, "1.50")))
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, money(t, "0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	items := []commands.ItemArgument{itemArg(t, kernel.NewUUID(), 1, "5.00")}
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), items, money(t, "0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	items := []commands.ItemArgument{itemArg(t, kernel.NewUUID(), 1, "5.00")}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, items, money(t, "0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewItemArgument_InvalidQuantity(t *testing.T) {
	_, err := commands.NewItemArgument(kernel.NewUUID(), 0, money(t, "5.00"))
	require.Error(t, err)
}

func TestNewItemArgument_UnconstructedPrice(t *testing.T) {
	_, err := commands.NewItemArgument(kernel.NewUUID(), 1, kernel.Money{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}
