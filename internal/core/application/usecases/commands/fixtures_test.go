package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func itemArg(t *testing.T, productID kernel.UUID, quantity int, price string) commands.ItemArgument {
	t.Helper()
	arg, err := commands.NewItemArgument(productID, quantity, money(t, price))
	require.NoError(t, err)
	return arg
}

// createdOrder builds an order in Created status with a single line.
func createdOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money(t, "0"))
	require.NoError(t, err)
	require.NoError(t, ord.AddItem(productID, 1, money(t, "10.00")))
	return ord
}

// processingOrder builds an order that has left the Created status.
func processingOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	ord := createdOrder(t, productID)
	require.NoError(t, ord.ChangeStatus(order.Processing))
	return ord
}
