package order_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newCreatedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroMoney())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCustomerID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomerID, money(t, "5.00"))

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(validCustomerID))
		assert.Equal(t, order.Created, o.Status())
		assert.True(t, o.CanBeModified())
		assert.False(t, o.HasItems())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validCustomerID, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidCustomerID kernel.UUID

		o, err := order.NewOrder(validID, invalidCustomerID, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed discount", func(t *testing.T) {
		var invalidDiscount kernel.Money

		o, err := order.NewOrder(validID, validCustomerID, invalidDiscount)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "money must be created")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order validates", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append item with snapshot price", func(t *testing.T) {
		o := newCreatedOrder(t)
		productID := kernel.NewUUID()

		err := o.AddItem(productID, 2, money(t, "10.00"))

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		item := o.Items()[0]
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "10.00", item.Price().String())
		assert.True(t, o.HasItems())
	})

	t.Run("should reject duplicate product", func(t *testing.T) {
		o := newCreatedOrder(t)
		productID := kernel.NewUUID()
		require.NoError(t, o.AddItem(productID, 1, money(t, "10.00")))

		err := o.AddItem(productID, 3, money(t, "12.00"))

		require.ErrorIs(t, err, order.ErrDuplicateProduct)

		var dupErr *order.DuplicateProductError
		require.ErrorAs(t, err, &dupErr)
		assert.True(t, dupErr.ProductID.IsEqual(productID))
		require.Len(t, o.Items(), 1)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := newCreatedOrder(t)

		err := o.AddItem(kernel.NewUUID(), 0, money(t, "10.00"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should reject mutation once processed", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))
		require.NoError(t, o.ChangeStatus(order.Processing))

		err := o.AddItem(kernel.NewUUID(), 1, money(t, "10.00"))

		require.ErrorIs(t, err, order.ErrOrderAlreadyProcessed)
	})
}

func TestOrder_UpdateItem(t *testing.T) {
	t.Run("should update quantity and price in place", func(t *testing.T) {
		o := newCreatedOrder(t)
		productID := kernel.NewUUID()
		require.NoError(t, o.AddItem(productID, 1, money(t, "10.00")))
		itemID := o.Items()[0].ID()

		err := o.UpdateItem(productID, 5, money(t, "8.00"))

		require.NoError(t, err)
		item := o.Items()[0]
		assert.True(t, item.ID().IsEqual(itemID), "item identity must be preserved")
		assert.Equal(t, 5, item.Quantity())
		assert.Equal(t, "8.00", item.Price().String())
	})

	t.Run("should fail when no item references the product", func(t *testing.T) {
		o := newCreatedOrder(t)
		missing := kernel.NewUUID()

		err := o.UpdateItem(missing, 1, money(t, "10.00"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), missing.String())
	})

	t.Run("should reject mutation once processed", func(t *testing.T) {
		o := newCreatedOrder(t)
		productID := kernel.NewUUID()
		require.NoError(t, o.AddItem(productID, 1, money(t, "10.00")))
		require.NoError(t, o.ChangeStatus(order.Processing))

		err := o.UpdateItem(productID, 2, money(t, "10.00"))

		require.ErrorIs(t, err, order.ErrOrderAlreadyProcessed)
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should remove the referenced line", func(t *testing.T) {
		o := newCreatedOrder(t)
		keep := kernel.NewUUID()
		drop := kernel.NewUUID()
		require.NoError(t, o.AddItem(keep, 1, money(t, "10.00")))
		require.NoError(t, o.AddItem(drop, 2, money(t, "4.00")))

		err := o.RemoveItem(drop)

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.True(t, o.Items()[0].ProductID().IsEqual(keep))
	})

	t.Run("removing the last item is permitted", func(t *testing.T) {
		o := newCreatedOrder(t)
		productID := kernel.NewUUID()
		require.NoError(t, o.AddItem(productID, 1, money(t, "10.00")))

		err := o.RemoveItem(productID)

		require.NoError(t, err)
		assert.False(t, o.HasItems())
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("should fail when item is absent", func(t *testing.T) {
		o := newCreatedOrder(t)

		err := o.RemoveItem(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("should replace the whole collection", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))

		replacement, err := order.NewItem(kernel.NewUUID(), 3, money(t, "2.00"))
		require.NoError(t, err)

		require.NoError(t, o.ReplaceItems([]*order.Item{replacement}))

		require.Len(t, o.Items(), 1)
		assert.Equal(t, 3, o.Items()[0].Quantity())
	})

	t.Run("should reject mutation once processed", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))
		require.NoError(t, o.ChangeStatus(order.Processing))

		err := o.ReplaceItems(nil)

		require.ErrorIs(t, err, order.ErrOrderAlreadyProcessed)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("single item without discount", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, money(t, "10.00")))

		assert.Equal(t, "20.00", o.Total().String())
	})

	t.Run("discount is subtracted from the item sum", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money(t, "5.50"))
		require.NoError(t, err)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 2, money(t, "10.00")))
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "3.25")))

		assert.Equal(t, "17.75", o.Total().String())
	})

	t.Run("discount exceeding the item sum clamps total to zero", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money(t, "100.00"))
		require.NoError(t, err)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))

		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("total holds after every mutation", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), money(t, "1.00"))
		require.NoError(t, err)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AddItem(first, 2, money(t, "10.00")))
		assert.Equal(t, "19.00", o.Total().String())

		require.NoError(t, o.AddItem(second, 1, money(t, "5.00")))
		assert.Equal(t, "24.00", o.Total().String())

		require.NoError(t, o.UpdateItem(first, 1, money(t, "10.00")))
		assert.Equal(t, "14.00", o.Total().String())

		require.NoError(t, o.RemoveItem(second))
		assert.Equal(t, "9.00", o.Total().String())

		require.NoError(t, o.ChangeDiscount(money(t, "50.00")))
		assert.Equal(t, "0.00", o.Total().String())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should follow the lifecycle forward", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))

		require.NoError(t, o.ChangeStatus(order.Processing))
		require.NoError(t, o.ChangeStatus(order.Shipped))
		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject illegal transition and leave order unchanged", func(t *testing.T) {
		o := newCreatedOrder(t)

		err := o.ChangeStatus(order.Shipped)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("cancellation is terminal", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Canceled))

		err := o.ChangeStatus(order.Processing)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_ChangeCustomerAndDiscount(t *testing.T) {
	t.Run("should apply while created", func(t *testing.T) {
		o := newCreatedOrder(t)
		newCustomer := kernel.NewUUID()

		require.NoError(t, o.ChangeCustomer(newCustomer))
		require.NoError(t, o.ChangeDiscount(money(t, "2.00")))

		assert.True(t, o.CustomerID().IsEqual(newCustomer))
		assert.Equal(t, "2.00", o.Discount().String())
	})

	t.Run("should reject once processed", func(t *testing.T) {
		o := newCreatedOrder(t)
		require.NoError(t, o.AddItem(kernel.NewUUID(), 1, money(t, "10.00")))
		require.NoError(t, o.ChangeStatus(order.Processing))

		require.ErrorIs(t, o.ChangeCustomer(kernel.NewUUID()), order.ErrOrderAlreadyProcessed)
		require.ErrorIs(t, o.ChangeDiscount(kernel.ZeroMoney()), order.ErrOrderAlreadyProcessed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild the aggregate from persistence", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		item, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, "10.00"))
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, customerID, []*order.Item{item}, money(t, "1.00"), order.Shipped)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.False(t, o.CanBeModified())
		assert.Equal(t, "19.00", o.Total().String())
	})

	t.Run("should reject duplicate products in the stored item set", func(t *testing.T) {
		productID := kernel.NewUUID()
		first, err := order.NewItem(productID, 1, money(t, "10.00"))
		require.NoError(t, err)
		second, err := order.NewItem(productID, 2, money(t, "10.00"))
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]*order.Item{first, second},
			kernel.ZeroMoney(), order.Created,
		)

		require.ErrorIs(t, err, order.ErrDuplicateProduct)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, kernel.ZeroMoney(), order.Unknown,
		)

		require.Error(t, err)
	})
}
