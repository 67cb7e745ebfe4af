package order_test

import (
	"fmt"
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Canceled))
	})

	t.Run("rank follows lifecycle position", func(t *testing.T) {
		assert.Equal(t, 1, order.Created.Rank())
		assert.Equal(t, 5, order.Canceled.Rank())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Created,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return canonical names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Created, "CREATED"},
			{order.Processing, "PROCESSING"},
			{order.Shipped, "SHIPPED"},
			{order.Delivered, "DELIVERED"},
			{order.Canceled, "CANCELED"},
			{order.Unknown, "UNKNOWN"},
			{order.Status(42), "UNKNOWN"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		status, err := order.StatusFromString("PROCESSING")

		require.NoError(t, err)
		assert.Equal(t, order.Processing, status)
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, input := range []string{"", "created", "IN_TRANSIT"} {
			_, err := order.StatusFromString(input)
			require.Error(t, err, "expected error for input %q", input)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should permit exactly the table transitions", func(t *testing.T) {
		allowed := map[order.Status][]order.Status{
			order.Created:    {order.Processing, order.Canceled},
			order.Processing: {order.Shipped},
			order.Shipped:    {order.Delivered},
			order.Delivered:  {},
			order.Canceled:   {},
		}

		all := []order.Status{
			order.Created, order.Processing, order.Shipped, order.Delivered, order.Canceled,
		}

		for from, tos := range allowed {
			permitted := make(map[order.Status]bool, len(tos))
			for _, to := range tos {
				permitted[to] = true
			}

			for _, to := range all {
				assert.Equal(t, permitted[to], from.CanTransitionTo(to),
					"transition %s -> %s", from, to)
			}
		}
	})

	t.Run("no self-transition is ever legal", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Created, order.Processing, order.Shipped, order.Delivered, order.Canceled,
		} {
			assert.False(t, s.CanTransitionTo(s), "self-transition for %s", s)
		}
	})

	t.Run("rank comparison does not authorize skipping states", func(t *testing.T) {
		// Delivered outranks Created, yet the table forbids jumping there.
		assert.False(t, order.Created.CanTransitionTo(order.Delivered))
		assert.False(t, order.Processing.CanTransitionTo(order.Delivered))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform a legal transition", func(t *testing.T) {
		newStatus, err := order.Created.TransitionTo(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, newStatus)
	})

	t.Run("should reject an illegal transition with from/to context", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.Processing)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Shipped, transitionErr.From)
		assert.Equal(t, order.Processing, transitionErr.To)
		assert.Equal(t, "cannot change status from SHIPPED to PROCESSING", err.Error())
	})

	t.Run("should reject an invalid target status", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
