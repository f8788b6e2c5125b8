package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemCommandHandler_Handle(t *testing.T) {
	t.Run("should increment the session cart", func(t *testing.T) {
		session := kernel.NewUUID()
		c := cart.RestoreCart(map[int64]int{1: 2})

		products := new(MockProductRepository)
		_, factory := catalogUoW(products, new(MockSupplierRepository))
		products.On("Get", mock.Anything, int64(1)).Return(newProduct(t, 1, 3, "Widget", 250, 1), nil).Once()

		carts := new(MockCartStore)
		carts.On("Load", mock.Anything, session).Return(c, nil).Once()
		carts.On("Save", mock.Anything, session, c).Return(nil).Once()

		cmd, err := commands.NewAddCartItemCommand(session, 1, 3)
		require.NoError(t, err)

		require.NoError(t, commands.NewAddCartItemCommandHandler(factory, carts).Handle(t.Context(), cmd))

		assert.Equal(t, 5, c.Quantity(1))
		carts.AssertExpectations(t)
	})

	t.Run("should not touch the cart for unknown products", func(t *testing.T) {
		session := kernel.NewUUID()
		products := new(MockProductRepository)
		_, factory := catalogUoW(products, new(MockSupplierRepository))
		products.On("Get", mock.Anything, int64(9)).Return(nil, errs.NewObjectNotFoundError("id", int64(9))).Once()
		carts := new(MockCartStore)

		cmd, err := commands.NewAddCartItemCommand(session, 9, 1)
		require.NoError(t, err)

		err = commands.NewAddCartItemCommandHandler(factory, carts).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		carts.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})
}

func TestRemoveCartItemCommandHandler_Handle(t *testing.T) {
	session := kernel.NewUUID()
	c := cart.RestoreCart(map[int64]int{1: 2, 2: 1})
	carts := new(MockCartStore)
	carts.On("Load", mock.Anything, session).Return(c, nil).Once()
	carts.On("Save", mock.Anything, session, c).Return(nil).Once()

	cmd, err := commands.NewRemoveCartItemCommand(session, 1)
	require.NoError(t, err)

	require.NoError(t, commands.NewRemoveCartItemCommandHandler(carts).Handle(t.Context(), cmd))

	assert.Equal(t, []int64{2}, c.ProductIDs())
}
