// Package ports defines the contracts between the marketplace domain and its
// infrastructure: repositories, the unit of work, the cart store and the notifier.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and assigns its id.
	Add(ctx context.Context, u *user.User) error

	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByUsername returns errs.ErrObjectNotFound when no account matches.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	Add(ctx context.Context, s *supplier.Supplier) error
	Update(ctx context.Context, s *supplier.Supplier) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*supplier.Supplier, error)

	// GetByUserID returns the supplier profile linked to a user account.
	GetByUserID(ctx context.Context, userID int64) (*supplier.Supplier, error)
}

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetBySlug returns active and inactive products alike.
	GetBySlug(ctx context.Context, slug string) (*product.Product, error)

	// GetByIDs returns the products that still exist, keyed by id.
	// Missing ids are not an error.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)

	// ListIDsBySupplier returns the ids of every product owned by the supplier.
	ListIDsBySupplier(ctx context.Context, supplierID int64) ([]int64, error)
}

// DeliveryRepository defines the persistence contract for deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id int64) (*delivery.Delivery, error)

	// GetByOrderID returns errs.ErrObjectNotFound when the order has no delivery yet.
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)
}
