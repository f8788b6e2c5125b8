package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// ReasonProductOutsideScope is the denial reason for products of another supplier.
const ReasonProductOutsideScope = "product belongs to another supplier"

// CreateProductCommandHandler stores a new product owned by the acting supplier.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	now        func() time.Time
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the id of the new product.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	p, err := product.NewProduct(cmd.SupplierID(), cmd.Details(), h.now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return p.ID(), nil
}

// UpdateProductCommandHandler edits a product. Products of other suppliers
// are rejected with errs.ErrAccessDenied and stay unchanged.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := ownedProduct(ctx, repo.Get, cmd.SupplierID(), cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.Update(cmd.Details()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteProductCommandHandler removes a product of the acting supplier.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	if _, err := ownedProduct(ctx, repo.Get, cmd.SupplierID(), cmd.ProductID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ownedProduct(
	ctx context.Context,
	get func(context.Context, int64) (*product.Product, error),
	supplierID, productID int64,
) (*product.Product, error) {
	p, err := get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(supplierID) {
		return nil, errs.NewAccessDeniedError("product", productID, ReasonProductOutsideScope)
	}
	return p, nil
}
