package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierScope(t *testing.T) {
	scope := services.NewSupplierScope(3, []int64{1, 4})

	t.Run("should see orders with an owned line", func(t *testing.T) {
		assert.True(t, scope.HasLineIn(storedOrder(t, 1)))
	})

	t.Run("should see orders through a line only", func(t *testing.T) {
		other, owned := int64(8), int64(4)
		l1, err := order.NewLine(other, 1)
		require.NoError(t, err)
		l2, err := order.NewLine(owned, 2)
		require.NoError(t, err)

		o, err := order.RestoreOrder(2, nil, nil, 3, time.Now(), order.Pending, []order.Line{l1, l2})
		require.NoError(t, err)

		assert.True(t, scope.HasLineIn(o))
	})

	t.Run("should ignore orders of other suppliers", func(t *testing.T) {
		foreign := services.NewSupplierScope(9, []int64{7})

		assert.False(t, foreign.HasLineIn(storedOrder(t, 1)))
	})
}

func TestSupplierScope_MarkReady(t *testing.T) {
	t.Run("should mark an order with an owned line", func(t *testing.T) {
		o := storedOrder(t, 5)

		require.NoError(t, services.NewSupplierScope(3, []int64{1}).MarkReady(o))

		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should deny other suppliers and keep the status", func(t *testing.T) {
		o := storedOrder(t, 5)

		err := services.NewSupplierScope(3, []int64{2}).MarkReady(o)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse delivered orders", func(t *testing.T) {
		o := storedOrder(t, 5)
		require.NoError(t, o.SyncStatus(order.Delivered))

		err := services.NewSupplierScope(3, []int64{1}).MarkReady(o)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
