package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// CreateProductCommand lists a new product for the acting supplier.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	supplierID int64
	details    product.Details

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(supplierID int64, details product.Details) (CreateProductCommand, error) {
	if err := validatePositiveID("supplier", supplierID); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		supplierID: supplierID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) SupplierID() int64 {
	return c.supplierID
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}

// UpdateProductCommand edits a product of the acting supplier.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	supplierID int64
	productID  int64
	details    product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(supplierID, productID int64, details product.Details) (UpdateProductCommand, error) {
	if err := errors.Join(
		validatePositiveID("supplier", supplierID),
		validatePositiveID("product", productID),
	); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{
		supplierID: supplierID,
		productID:  productID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) SupplierID() int64 {
	return c.supplierID
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Details() product.Details {
	return c.details
}

// DeleteProductCommand removes a product of the acting supplier.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	supplierID int64
	productID  int64

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(supplierID, productID int64) (DeleteProductCommand, error) {
	if err := errors.Join(
		validatePositiveID("supplier", supplierID),
		validatePositiveID("product", productID),
	); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{
		supplierID: supplierID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) SupplierID() int64 {
	return c.supplierID
}

func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}
