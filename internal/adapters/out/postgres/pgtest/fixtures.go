package pgtest

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/supplierrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/core/domain/model/user"

	"github.com/gosimple/slug"
)

// Seeder inserts consistent aggregates through the real repositories.
type Seeder struct {
	db  *Database
	ctx context.Context
}

// Seed returns a Seeder bound to ctx.
func (d *Database) Seed(ctx context.Context) *Seeder {
	return &Seeder{db: d, ctx: ctx}
}

// User inserts an account with the password "password123".
func (s *Seeder) User(username string, staff bool) (*user.User, error) {
	u, err := user.NewUser(username, username+"@example.com", "", "password123", time.Now())
	if err != nil {
		return nil, err
	}
	if staff {
		u.PromoteToStaff()
	}
	if err = userrepo.NewGormUserRepository(s.db.DB).Add(s.ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Supplier inserts a supplier, optionally linked to a user.
func (s *Seeder) Supplier(name string, userID *int64, approved bool) (*supplier.Supplier, error) {
	sup, err := supplier.NewSupplier(userID, supplier.Details{Name: name, Email: slug.Make(name) + "@example.com"})
	if err != nil {
		return nil, err
	}
	if approved {
		sup.Approve()
	}
	if err = supplierrepo.NewGormSupplierRepository(s.db.DB).Add(s.ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Product inserts an active product.
func (s *Seeder) Product(supplierID int64, name string, price int64, minimum int) (*product.Product, error) {
	return s.ProductAt(supplierID, name, price, minimum, time.Now())
}

// ProductAt inserts an active product with the given creation time.
func (s *Seeder) ProductAt(supplierID int64, name string, price int64, minimum int, createdAt time.Time) (*product.Product, error) {
	p, err := product.NewProduct(supplierID, product.Details{
		Name:            name,
		Price:           kernel.MoneyFromInt(price),
		MinimumQuantity: minimum,
		Active:          true,
	}, createdAt)
	if err != nil {
		return nil, err
	}
	if err = productrepo.NewGormProductRepository(s.db.DB).Add(s.ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Order inserts a pending single-product order.
func (s *Seeder) Order(clientID *int64, productID int64, quantity int, createdAt time.Time) (*order.Order, error) {
	o, err := order.NewOrder(clientID, productID, quantity, createdAt)
	if err != nil {
		return nil, err
	}
	if err = orderrepo.NewGormOrderRepository(s.db.DB).Add(s.ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delivery inserts a delivery for the order and moves it to status.
func (s *Seeder) Delivery(orderID int64, transport delivery.Transport, status delivery.Status) (*delivery.Delivery, error) {
	d, err := delivery.NewDelivery(orderID, delivery.Details{Transport: transport, Address: "1 Main Street"})
	if err != nil {
		return nil, err
	}
	if err = d.ChangeStatus(status, time.Now()); err != nil {
		return nil, err
	}
	if err = deliveryrepo.NewGormDeliveryRepository(s.db.DB).Add(s.ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
