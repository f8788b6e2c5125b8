package commands

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// Customer identifies the authenticated buyer of a checkout.
type Customer struct {
	UserID int64
	Email  string
	Name   string
}

// CheckoutCommand turns a session cart into orders and deliveries.
// A nil amount asks for the transport tariff; a nil scheduled date leaves the
// delivery unscheduled.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(session, commands.Customer{UserID: 4, Email: "awa@example.test"},
//	    delivery.Details{Transport: delivery.Moto, Address: "12 rue des Lilas"})
//	result, err := handler.Handle(ctx, cmd)
//	// len(result.OrderIDs) == number of distinct products in the cart
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	session  kernel.UUID
	customer Customer
	details  delivery.Details

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(session kernel.UUID, customer Customer, details delivery.Details) (CheckoutCommand, error) {
	cmd := CheckoutCommand{guard: guard.NewConstructorGuard()}

	transport, transportErr := delivery.ParseTransport(string(details.Transport))
	if err := errors.Join(
		session.Validate(),
		validatePositiveID("customer", customer.UserID),
		transportErr,
	); err != nil {
		return CheckoutCommand{}, err
	}

	details.Transport = transport
	details.Address = strings.TrimSpace(details.Address)
	customer.Email = strings.TrimSpace(customer.Email)

	cmd.session = session
	cmd.customer = customer
	cmd.details = details
	return cmd, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Session() kernel.UUID {
	return c.session
}

func (c CheckoutCommand) Customer() Customer {
	return c.customer
}

// Details returns the delivery fields applied to every created delivery.
func (c CheckoutCommand) Details() delivery.Details {
	return c.details
}

// CheckoutResult describes a committed checkout.
type CheckoutResult struct {
	OrderIDs       []int64
	DeliveryIDs    []int64
	ProductsTotal  kernel.Money
	DeliveryAmount kernel.Money
	Total          kernel.Money
	PlacedAt       time.Time
}
