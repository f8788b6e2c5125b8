package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// MarkOrderReadyCommandHandler moves an order to in_progress when one of its
// lines belongs to the acting supplier. Other suppliers get errs.ErrAccessDenied
// and the order is left unchanged.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderingUoWFactory
}

func NewMarkOrderReadyCommandHandler(uowFactory OrderingUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{uowFactory: uowFactory}
}

func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	owned, err := uow.ProductRepository().ListIDsBySupplier(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	if err = services.NewSupplierScope(cmd.SupplierID(), owned).MarkReady(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
