// Package mail sends customer notifications over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/core/ports"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Options configures the SMTP connection.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier implements ports.Notifier with gomail.
type Notifier struct {
	sender sender
	from   string
}

func NewNotifier(opts Options) *Notifier {
	return &Notifier{
		sender: gomail.NewDialer(opts.Host, opts.Port, opts.Username, opts.Password),
		from:   opts.From,
	}
}

// NotifyOrdersPlaced e-mails the checkout summary to the customer.
func (n *Notifier) NotifyOrdersPlaced(ctx context.Context, c ports.OrderConfirmation) error {
	if c.To == "" {
		return fmt.Errorf("confirmation for orders %v has no recipient", c.OrderIDs)
	}

	m := composeConfirmation(n.from, c)
	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("could not send confirmation: %w", err)
	}

	log.Ctx(ctx).Debug().Ints64("order_ids", c.OrderIDs).Str("to", c.To).Msg("order confirmation sent")
	return nil
}

func composeConfirmation(from string, c ports.OrderConfirmation) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", c.To)
	m.SetHeader("Subject", "Order confirmation")
	m.SetBody("text/plain", confirmationBody(c))
	return m
}

func confirmationBody(c ports.OrderConfirmation) string {
	var b strings.Builder

	name := c.CustomerName
	if name == "" {
		name = "customer"
	}
	fmt.Fprintf(&b, "Hello %s,\n\nThank you for your order.\n\n", name)

	ids := make([]string, 0, len(c.OrderIDs))
	for _, id := range c.OrderIDs {
		ids = append(ids, fmt.Sprintf("#%d", id))
	}
	fmt.Fprintf(&b, "Orders: %s\n\n", strings.Join(ids, ", "))

	for _, line := range c.Lines {
		fmt.Fprintf(&b, "- %s x %d: %s\n", line.ProductName, line.Quantity, line.Subtotal)
	}

	fmt.Fprintf(&b, "\nProducts: %s\n", c.ProductsTotal)
	fmt.Fprintf(&b, "Delivery: %s\n", c.DeliveryAmount)
	fmt.Fprintf(&b, "Total: %s\n", c.Total)
	if c.Address != "" {
		fmt.Fprintf(&b, "\nDelivery address: %s\n", c.Address)
	}
	return b.String()
}

// NopNotifier drops every notification. It is used when no SMTP host is
// configured.
type NopNotifier struct{}

func (NopNotifier) NotifyOrdersPlaced(ctx context.Context, c ports.OrderConfirmation) error {
	log.Ctx(ctx).Debug().Ints64("order_ids", c.OrderIDs).Msg("smtp not configured, confirmation skipped")
	return nil
}
