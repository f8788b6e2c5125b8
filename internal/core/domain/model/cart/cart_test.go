package cart_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddRemove(t *testing.T) {
	t.Run("should increment existing entries", func(t *testing.T) {
		c := cart.NewCart()

		require.NoError(t, c.Add(3, 2))
		require.NoError(t, c.Add(3, 4))
		require.NoError(t, c.Add(1, 1))

		assert.Equal(t, 6, c.Quantity(3))
		assert.Equal(t, []int64{1, 3}, c.ProductIDs())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		c := cart.NewCart()

		require.ErrorIs(t, c.Add(0, 1), errs.ErrValueIsInvalid)
		require.ErrorIs(t, c.Add(1, 0), errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should reject a total above the maximum quantity", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add(7, kernel.MaxQuantity))

		err := c.Add(7, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, kernel.MaxQuantity, c.Quantity(7))
		assert.Equal(t, map[int64]int{7: kernel.MaxQuantity}, cart.RestoreCart(c.Items()).Items())
	})

	t.Run("should reject a single add above the maximum quantity", func(t *testing.T) {
		c := cart.NewCart()

		require.ErrorIs(t, c.Add(7, kernel.MaxQuantity+1), errs.ErrValueIsOutOfRange)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should remove entries", func(t *testing.T) {
		c := cart.RestoreCart(map[int64]int{1: 2, 5: 1, 9: 0})

		c.Remove(1)
		c.Remove(42)

		assert.Equal(t, map[int64]int{5: 1}, c.Items())
	})
}

func TestSummarize(t *testing.T) {
	newProduct := func(t *testing.T, id int64, name string, price int64) *product.Product {
		p, err := product.RestoreProduct(id, 1, product.Details{
			Name: name, Price: kernel.MoneyFromInt(price), MinimumQuantity: 1, Active: true,
		}, time.Now())
		require.NoError(t, err)
		return p
	}

	t.Run("should price lines and drop missing products", func(t *testing.T) {
		c := cart.RestoreCart(map[int64]int{1: 2, 2: 3, 99: 1})
		products := map[int64]*product.Product{
			1: newProduct(t, 1, "Widget", 250),
			2: newProduct(t, 2, "Gadget", 100),
		}

		summary := cart.Summarize(c, products)

		require.Len(t, summary.Lines, 2)
		assert.Equal(t, "500.00", summary.Lines[0].Subtotal.String())
		assert.Equal(t, "300.00", summary.Lines[1].Subtotal.String())
		assert.Equal(t, "800.00", summary.Total.String())
	})

	t.Run("should return a zero total for an empty cart", func(t *testing.T) {
		summary := cart.Summarize(cart.NewCart(), nil)

		assert.Empty(t, summary.Lines)
		assert.True(t, summary.Total.IsZero())
	})
}
