package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// AddCartItemCommand adds a quantity of a product to a session cart.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	session   kernel.UUID
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(session kernel.UUID, productID int64, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		session.Validate(),
		validatePositiveID("product", productID),
		validateQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	cmd.session = session
	cmd.productID = productID
	cmd.quantity = quantity
	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Session() kernel.UUID {
	return c.session
}

func (c AddCartItemCommand) ProductID() int64 {
	return c.productID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// RemoveCartItemCommand deletes a product entry from a session cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	session   kernel.UUID
	productID int64

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(session kernel.UUID, productID int64) (RemoveCartItemCommand, error) {
	if err := errors.Join(session.Validate(), validatePositiveID("product", productID)); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{
		session:   session,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) Session() kernel.UUID {
	return c.session
}

func (c RemoveCartItemCommand) ProductID() int64 {
	return c.productID
}

func validatePositiveID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid", fmt.Errorf("%d is not greater than 0", id),
		)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
