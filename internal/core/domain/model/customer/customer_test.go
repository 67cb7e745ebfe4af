package customer_test

import (
	"testing"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Alice", "+55 11 99999-0000")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "+55 11 99999-0000", c.Phone())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "+55 11 99999-0000")
		require.ErrorIs(t, err, customer.ErrNameIsRequired)
	})

	t.Run("should reject empty phone", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Alice", "")
		require.ErrorIs(t, err, customer.ErrPhoneIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c customer.Customer
		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_Update(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Alice", "+55 11 99999-0000")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Alice B."))
	require.NoError(t, c.ChangePhone("+55 11 98888-0000"))

	assert.Equal(t, "Alice B.", c.Name())
	assert.Equal(t, "+55 11 98888-0000", c.Phone())

	require.ErrorIs(t, c.Rename(""), customer.ErrNameIsRequired)
}
