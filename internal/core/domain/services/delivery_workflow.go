package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ErrDeliveryBelongsToAnotherOrder is returned when Apply is given a delivery
// and an order that are not linked.
var ErrDeliveryBelongsToAnotherOrder = errors.New("delivery belongs to another order")

// DeliveryWorkflow keeps an order's status in step with its delivery.
//
// Mapping of delivery status to order status:
//
//	prep       -> pending
//	in_transit -> in_progress
//	delivered  -> delivered
//	returned   -> cancelled
//
// Example:
//
//	wf := services.NewDeliveryWorkflow()
//	if err := wf.Apply(o, d, delivery.InTransit, time.Now()); err != nil {
//	    return err
//	}
//	// d.AssignedAt() is set, o.Status() == order.InProgress
type DeliveryWorkflow struct{}

func NewDeliveryWorkflow() DeliveryWorkflow {
	return DeliveryWorkflow{}
}

// OrderStatusFor returns the order status driven by a delivery status.
func (DeliveryWorkflow) OrderStatusFor(s delivery.Status) (order.Status, error) {
	switch s {
	case delivery.Prep:
		return order.Pending, nil
	case delivery.InTransit:
		return order.InProgress, nil
	case delivery.Delivered:
		return order.Delivered, nil
	case delivery.Returned:
		return order.Cancelled, nil
	case delivery.Unknown:
	}
	return order.Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%d is not a delivery status", s),
	)
}

// Apply moves d to the status next and syncs o. Neither aggregate changes when
// the transition is rejected.
func (w DeliveryWorkflow) Apply(o *order.Order, d *delivery.Delivery, next delivery.Status, now time.Time) error {
	if err := errors.Join(o.Validate(), d.Validate()); err != nil {
		return err
	}
	if o.ID() != 0 && d.OrderID() != o.ID() {
		return ErrDeliveryBelongsToAnotherOrder
	}

	orderStatus, err := w.OrderStatusFor(next)
	if err != nil {
		return err
	}

	if err = d.ChangeStatus(next, now); err != nil {
		return err
	}
	return o.SyncStatus(orderStatus)
}
