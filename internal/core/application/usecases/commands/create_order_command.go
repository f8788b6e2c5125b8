package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand orders a quantity of one catalog product, identified by slug.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(&userID, "widget", 5)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID *int64
	slug     string
	quantity int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the slug and the quantity. clientID is nil for
// anonymous customers.
func NewCreateOrderCommand(clientID *int64, slug string, quantity int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSlug(slug),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientID() *int64 {
	return c.clientID
}

func (c CreateOrderCommand) Slug() string {
	return c.slug
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderCommand) setSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	c.slug = slug
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
