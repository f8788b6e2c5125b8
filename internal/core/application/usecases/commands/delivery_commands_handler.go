package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// UpdateDeliveryCommandHandler upserts an order's delivery and keeps the order
// status in step through the DeliveryWorkflow.
type UpdateDeliveryCommandHandler struct {
	uowFactory OrderingUoWFactory
	workflow   services.DeliveryWorkflow
	now        func() time.Time
}

func NewUpdateDeliveryCommandHandler(uowFactory OrderingUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewDeliveryWorkflow(),
		now:        time.Now,
	}
}

// Handle returns the id of the updated or created delivery.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (int64, error) {
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

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	d, err := deliveryRepo.GetByOrderID(ctx, o.ID())
	created := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if d, err = delivery.NewDelivery(o.ID(), cmd.Details()); err != nil {
			return 0, err
		}
		created = true
	case err != nil:
		return 0, err
	default:
		if err = d.UpdateDetails(cmd.Details()); err != nil {
			return 0, err
		}
	}

	next := d.Status()
	if cmd.Status() != nil {
		next = *cmd.Status()
	}
	if err = h.workflow.Apply(o, d, next, h.now()); err != nil {
		return 0, err
	}

	if created {
		err = deliveryRepo.Add(ctx, d)
	} else {
		err = deliveryRepo.Update(ctx, d)
	}
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return d.ID(), nil
}

// ChangeDeliveryStatusCommandHandler applies a status to an existing delivery.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory OrderingUoWFactory
	workflow   services.DeliveryWorkflow
	now        func() time.Time
}

func NewChangeDeliveryStatusCommandHandler(uowFactory OrderingUoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewDeliveryWorkflow(),
		now:        time.Now,
	}
}

func (h ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	if err = h.workflow.Apply(o, d, cmd.Status(), h.now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
