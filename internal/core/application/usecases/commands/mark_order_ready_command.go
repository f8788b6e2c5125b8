package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand is a supplier's signal that its part of an order is ready.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	supplierID int64
	orderID    int64

	guard guard.ConstructorGuard
}

func NewMarkOrderReadyCommand(supplierID, orderID int64) (MarkOrderReadyCommand, error) {
	if err := errors.Join(
		validatePositiveID("supplier", supplierID),
		validatePositiveID("order", orderID),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}
	return MarkOrderReadyCommand{
		supplierID: supplierID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

func (c MarkOrderReadyCommand) SupplierID() int64 {
	return c.supplierID
}

func (c MarkOrderReadyCommand) OrderID() int64 {
	return c.orderID
}
