package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartStore keeps session carts keyed by the session id.
type CartStore interface {
	// Load returns an empty cart for an unknown or expired session.
	Load(ctx context.Context, session kernel.UUID) (*cart.Cart, error)
	Save(ctx context.Context, session kernel.UUID, c *cart.Cart) error
	Delete(ctx context.Context, session kernel.UUID) error
}
