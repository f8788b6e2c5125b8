package commands

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AddCartItemCommandHandler increments a cart entry after checking that the
// product exists and is on sale.
type AddCartItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	carts      ports.CartStore
}

func NewAddCartItemCommandHandler(uowFactory CatalogUoWFactory, carts ports.CartStore) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
	}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.ensureOnSale(ctx, cmd.ProductID()); err != nil {
		return err
	}

	c, err := h.carts.Load(ctx, cmd.Session())
	if err != nil {
		return err
	}
	if err = c.Add(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}
	return h.carts.Save(ctx, cmd.Session(), c)
}

func (h AddCartItemCommandHandler) ensureOnSale(ctx context.Context, productID int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, productID)
	if err != nil {
		return err
	}
	if !p.IsActive() {
		return errs.NewObjectNotFoundError("product", productID)
	}
	return nil
}

// RemoveCartItemCommandHandler deletes a cart entry. Removing an absent
// entry succeeds.
type RemoveCartItemCommandHandler struct {
	carts ports.CartStore
}

func NewRemoveCartItemCommandHandler(carts ports.CartStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{carts: carts}
}

func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.Load(ctx, cmd.Session())
	if err != nil {
		return err
	}
	c.Remove(cmd.ProductID())
	return h.carts.Save(ctx, cmd.Session(), c)
}
