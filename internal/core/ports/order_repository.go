package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lines are stored and loaded together with their order.
type OrderRepository interface {
	// Add persists a new order with its lines and assigns its id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
