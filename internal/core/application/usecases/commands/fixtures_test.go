package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, id, supplierID int64, name string, price int64, minimum int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, supplierID, product.Details{
		Name:            name,
		Price:           kernel.MoneyFromInt(price),
		MinimumQuantity: minimum,
		Active:          true,
	}, time.Now())
	require.NoError(t, err)
	return p
}

func newStoredOrder(t *testing.T, id, productID int64, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(productID, 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, nil, &productID, 2, time.Now(), status, []order.Line{line})
	require.NoError(t, err)
	return o
}

// assignOrderID emulates the database identity on repository Add.
func assignOrderID(next *int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*next++
		_ = args.Get(1).(*order.Order).AssignID(*next)
	}
}
