package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSupplierQueryIsNotConstructed = errors.New(
		"SupplierQuery must be created via NewSupplierQuery constructor",
	)
	ErrListSupplierOrdersQueryIsNotConstructed = errors.New(
		"ListSupplierOrdersQuery must be created via NewListSupplierOrdersQuery constructor",
	)
	ErrListSupplierDeliveriesQueryIsNotConstructed = errors.New(
		"ListSupplierDeliveriesQuery must be created via NewListSupplierDeliveriesQuery constructor",
	)
	ErrListSuppliersQueryIsNotConstructed = errors.New(
		"ListSuppliersQuery must be created via NewListSuppliersQuery constructor",
	)
)

// SupplierQuery scopes a read to the acting supplier. It drives the product
// listing, the dashboard and the sales report.
type SupplierQuery struct {
	supplierID int64
	guard      guard.ConstructorGuard
}

func NewSupplierQuery(supplierID int64) (SupplierQuery, error) {
	if err := positiveID("supplier", supplierID); err != nil {
		return SupplierQuery{}, err
	}
	return SupplierQuery{supplierID: supplierID, guard: guard.NewConstructorGuard()}, nil
}

func (q SupplierQuery) Validate() error {
	return q.guard.Validate(ErrSupplierQueryIsNotConstructed)
}

func (q SupplierQuery) SupplierID() int64 {
	return q.supplierID
}

// ListSupplierOrdersQuery lists the orders touching the supplier's products.
type ListSupplierOrdersQuery struct {
	SupplierQuery
	status string
	dates  DateRange
	guard  guard.ConstructorGuard
}

func NewListSupplierOrdersQuery(supplierID int64, status string, dates DateRange) (ListSupplierOrdersQuery, error) {
	scope, err := NewSupplierQuery(supplierID)
	if err != nil {
		return ListSupplierOrdersQuery{}, err
	}
	s, err := parseOrderStatus(status)
	if err != nil {
		return ListSupplierOrdersQuery{}, err
	}

	q := ListSupplierOrdersQuery{SupplierQuery: scope, dates: dates, guard: guard.NewConstructorGuard()}
	if s != nil {
		q.status = s.String()
	}
	return q, nil
}

func (q ListSupplierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListSupplierOrdersQueryIsNotConstructed)
}

// ListSupplierDeliveriesQuery lists the deliveries of orders touching the
// supplier's products.
type ListSupplierDeliveriesQuery struct {
	SupplierQuery
	status string
	dates  DateRange
	guard  guard.ConstructorGuard
}

func NewListSupplierDeliveriesQuery(
	supplierID int64, status string, dates DateRange,
) (ListSupplierDeliveriesQuery, error) {
	scope, err := NewSupplierQuery(supplierID)
	if err != nil {
		return ListSupplierDeliveriesQuery{}, err
	}
	s, err := parseDeliveryStatus(status)
	if err != nil {
		return ListSupplierDeliveriesQuery{}, err
	}

	q := ListSupplierDeliveriesQuery{SupplierQuery: scope, dates: dates, guard: guard.NewConstructorGuard()}
	if s != nil {
		q.status = s.String()
	}
	return q, nil
}

func (q ListSupplierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListSupplierDeliveriesQueryIsNotConstructed)
}

// ListSuppliersQuery is the staff listing of every supplier.
type ListSuppliersQuery struct {
	guard guard.ConstructorGuard
}

func NewListSuppliersQuery() ListSuppliersQuery {
	return ListSuppliersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrListSuppliersQueryIsNotConstructed)
}

type SupplierOrderLineResponse struct {
	ProductID   int64        `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	UnitPrice   kernel.Money `json:"unit_price"`
	Subtotal    kernel.Money `json:"subtotal"`
}

// SupplierOrderResponse carries only the lines that belong to the supplier.
type SupplierOrderResponse struct {
	ID        int64                       `json:"id"`
	CreatedAt time.Time                   `json:"created_at"`
	Status    string                      `json:"status"`
	Lines     []SupplierOrderLineResponse `json:"lines"`
}

type DashboardResponse struct {
	TotalProducts     int64 `json:"total_products"`
	TotalOrders       int64 `json:"total_orders"`
	TotalDeliveries   int64 `json:"total_deliveries"`
	PendingDeliveries int64 `json:"pending_deliveries"`
	TotalSold         int64 `json:"total_sold"`
}

type SalesResponse struct {
	ProductName string       `json:"product_name"`
	UnitPrice   kernel.Money `json:"unit_price"`
	Quantity    int64        `json:"quantity"`
	Amount      kernel.Money `json:"amount"`
}

type SupplierResponse struct {
	ID             int64           `json:"id"`
	UserID         *int64          `json:"user_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	BankAccount    string          `json:"bank_account"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Approved       bool            `json:"approved"`
	ProductCount   int64           `json:"product_count"`
}
