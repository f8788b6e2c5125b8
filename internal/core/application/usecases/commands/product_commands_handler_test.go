package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogUoW(products *MockProductRepository, suppliers *MockSupplierRepository) (*MockUoW, *MockCatalogUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("ProductRepository").Return(products)
	uow.On("SupplierRepository").Return(suppliers)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	products := new(MockProductRepository)
	uow, factory := catalogUoW(products, new(MockSupplierRepository))
	products.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Run(func(args mock.Arguments) {
		p := args.Get(1).(*product.Product)
		assert.Equal(t, int64(3), p.SupplierID())
		assert.Equal(t, "blue-widget", p.Slug())
		_ = p.AssignID(12)
	}).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCreateProductCommand(3, product.Details{
		Name: "Blue Widget", Price: kernel.MoneyFromInt(10), MinimumQuantity: 1, Active: true,
	})
	require.NoError(t, err)

	id, err := commands.NewCreateProductCommandHandler(factory).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	products.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	t.Run("should update an owned product", func(t *testing.T) {
		products := new(MockProductRepository)
		uow, factory := catalogUoW(products, new(MockSupplierRepository))
		p := newProduct(t, 1, 3, "Widget", 250, 5)
		products.On("Get", mock.Anything, int64(1)).Return(p, nil).Once()
		products.On("Update", mock.Anything, p).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		d := p.Details()
		d.Price = kernel.MoneyFromInt(300)
		cmd, err := commands.NewUpdateProductCommand(3, 1, d)
		require.NoError(t, err)

		require.NoError(t, commands.NewUpdateProductCommandHandler(factory).Handle(t.Context(), cmd))
		assert.Equal(t, "300.00", p.Price().String())
	})

	t.Run("should deny another supplier and leave the product unchanged", func(t *testing.T) {
		products := new(MockProductRepository)
		uow, factory := catalogUoW(products, new(MockSupplierRepository))
		p := newProduct(t, 1, 3, "Widget", 250, 5)
		before := p.Details()
		products.On("Get", mock.Anything, int64(1)).Return(p, nil).Once()

		changed := before
		changed.Name = "Hijacked"
		cmd, err := commands.NewUpdateProductCommand(4, 1, changed)
		require.NoError(t, err)

		err = commands.NewUpdateProductCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, before, p.Details())
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	t.Run("should delete an owned product", func(t *testing.T) {
		products := new(MockProductRepository)
		uow, factory := catalogUoW(products, new(MockSupplierRepository))
		products.On("Get", mock.Anything, int64(1)).Return(newProduct(t, 1, 3, "Widget", 250, 5), nil).Once()
		products.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		cmd, err := commands.NewDeleteProductCommand(3, 1)
		require.NoError(t, err)

		require.NoError(t, commands.NewDeleteProductCommandHandler(factory).Handle(t.Context(), cmd))
		products.AssertExpectations(t)
	})

	t.Run("should deny another supplier", func(t *testing.T) {
		products := new(MockProductRepository)
		_, factory := catalogUoW(products, new(MockSupplierRepository))
		products.On("Get", mock.Anything, int64(1)).Return(newProduct(t, 1, 3, "Widget", 250, 5), nil).Once()

		cmd, err := commands.NewDeleteProductCommand(4, 1)
		require.NoError(t, err)

		err = commands.NewDeleteProductCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
