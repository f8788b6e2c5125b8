// Package commands contains the write operations of the marketplace.
// Every command is built through its constructor, validated by its handler,
// and executed inside a unit of work.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CatalogUoW covers supplier and product maintenance.
	CatalogUoW interface {
		TxManager
		SupplierRepoFactory
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderingUoW covers orders, their deliveries and the products they reference.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   d, err := uow.DeliveryRepository().GetByOrderID(ctx, id)
	//   // ... apply the workflow
	//
	//   err = uow.Commit(ctx)
	OrderingUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// AccountUoW covers user accounts and their supplier profiles.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		SupplierRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
