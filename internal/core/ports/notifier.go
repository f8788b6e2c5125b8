package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// ConfirmationLine is one purchased product of an OrderConfirmation.
type ConfirmationLine struct {
	ProductName string
	Quantity    int
	Subtotal    kernel.Money
}

// OrderConfirmation is the content of a checkout confirmation message.
type OrderConfirmation struct {
	To             string
	CustomerName   string
	OrderIDs       []int64
	Lines          []ConfirmationLine
	ProductsTotal  kernel.Money
	DeliveryAmount kernel.Money
	Total          kernel.Money
	Address        string
}

// Notifier delivers customer notifications. Callers treat failures as
// best-effort and never roll back on them.
type Notifier interface {
	NotifyOrdersPlaced(ctx context.Context, c OrderConfirmation) error
}
