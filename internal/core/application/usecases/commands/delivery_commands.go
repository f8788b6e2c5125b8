package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
		"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
	)
	ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
		"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
	)
)

// UpdateDeliveryCommand applies the back-office delivery form to an order,
// creating its delivery when missing. A nil status keeps the current one.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	details delivery.Details
	status  *delivery.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(
	orderID int64, details delivery.Details, status *delivery.Status,
) (UpdateDeliveryCommand, error) {
	var statusErr error
	if status != nil {
		statusErr = status.Validate()
	}
	transport, transportErr := delivery.ParseTransport(string(details.Transport))

	if err := errors.Join(validatePositiveID("order", orderID), transportErr, statusErr); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	details.Transport = transport
	return UpdateDeliveryCommand{
		orderID: orderID,
		details: details,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateDeliveryCommand) Details() delivery.Details {
	return c.details
}

func (c UpdateDeliveryCommand) Status() *delivery.Status {
	return c.status
}

// ChangeDeliveryStatusCommand is the back-office one-click status action.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID int64
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(deliveryID int64, status delivery.Status) (ChangeDeliveryStatusCommand, error) {
	if err := errors.Join(validatePositiveID("delivery", deliveryID), status.Validate()); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}
	return ChangeDeliveryStatusCommand{
		deliveryID: deliveryID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) DeliveryID() int64 {
	return c.deliveryID
}

func (c ChangeDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}
