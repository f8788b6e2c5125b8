package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler places a pending order for an active product.
// Nothing is written when the quantity is below the product's minimum.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the id of the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().GetBySlug(ctx, cmd.Slug())
	if err != nil {
		return 0, err
	}
	if !p.IsActive() {
		return 0, errs.NewObjectNotFoundError("slug", cmd.Slug())
	}

	if err = p.CheckQuantity(cmd.Quantity()); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.ClientID(), p.ID(), cmd.Quantity(), h.now())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
