package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle; repositories
// obtained from it use the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback is a no-op when the transaction was already committed.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	SupplierRepository() SupplierRepository
	ProductRepository() ProductRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
}
