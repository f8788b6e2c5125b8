package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
)

// GetOrderQuery loads the detail view of one order.
type GetOrderQuery struct {
	id    int64
	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id int64) (GetOrderQuery, error) {
	if err := positiveID("order", id); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() int64 {
	return q.id
}

// ListCustomerOrdersQuery lists the orders placed by one user.
type ListCustomerOrdersQuery struct {
	clientID int64
	status   *order.Status
	guard    guard.ConstructorGuard
}

// NewListCustomerOrdersQuery accepts an empty status for "all statuses".
func NewListCustomerOrdersQuery(clientID int64, status string) (ListCustomerOrdersQuery, error) {
	if err := positiveID("client", clientID); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	s, err := parseOrderStatus(status)
	if err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{clientID: clientID, status: s, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// ListOrdersQuery is the back-office order listing. The same filtered set
// feeds the CSV and JSON exports.
type ListOrdersQuery struct {
	status *order.Status
	search string
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery filters by status (empty for all) and by search, which
// matches the order id when all digits and the product name otherwise.
func NewListOrdersQuery(status, search string) (ListOrdersQuery, error) {
	s, err := parseOrderStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{status: s, search: search, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListDeliveriesQuery is the back-office delivery listing.
type ListDeliveriesQuery struct {
	status *delivery.Status
	dates  DateRange
	guard  guard.ConstructorGuard
}

// NewListDeliveriesQuery filters by delivery status and by the order date,
// both bounds included.
func NewListDeliveriesQuery(status string, dates DateRange) (ListDeliveriesQuery, error) {
	s, err := parseDeliveryStatus(status)
	if err != nil {
		return ListDeliveriesQuery{}, err
	}
	return ListDeliveriesQuery{status: s, dates: dates, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

type OrderLineResponse struct {
	ProductID    int64        `json:"product_id"`
	ProductName  string       `json:"product_name"`
	SupplierID   int64        `json:"supplier_id"`
	SupplierName string       `json:"supplier_name"`
	Quantity     int          `json:"quantity"`
	UnitPrice    kernel.Money `json:"unit_price"`
	Subtotal     kernel.Money `json:"subtotal"`
}

type DeliveryResponse struct {
	ID             int64        `json:"id"`
	OrderID        int64        `json:"order_id"`
	Transport      string       `json:"transport"`
	Address        string       `json:"address"`
	Amount         kernel.Money `json:"amount"`
	Description    string       `json:"description"`
	ScheduledAt    *time.Time   `json:"scheduled_at"`
	ActualAt       *time.Time   `json:"actual_at"`
	AssignedAt     *time.Time   `json:"assigned_at"`
	DeliveredAt    *time.Time   `json:"delivered_at"`
	Status         string       `json:"status"`
	OrderCreatedAt time.Time    `json:"order_created_at"`
	ProductName    string       `json:"product_name"`
}

type OrderDetailResponse struct {
	ID          int64               `json:"id"`
	ClientID    *int64              `json:"client_id"`
	ProductID   *int64              `json:"product_id"`
	ProductName string              `json:"product_name"`
	Quantity    int                 `json:"quantity"`
	CreatedAt   time.Time           `json:"created_at"`
	Status      string              `json:"status"`
	Lines       []OrderLineResponse `json:"lines" gorm:"-"`
	Delivery    *DeliveryResponse   `json:"delivery" gorm:"-"`
}

// OrderRecord is one row of the back-office listing and of its exports.
type OrderRecord struct {
	ID             int64        `json:"id"`
	CreatedAt      time.Time    `json:"created_at"`
	ProductName    string       `json:"product_name"`
	SupplierName   string       `json:"supplier_name"`
	Quantity       int          `json:"quantity"`
	UnitPrice      kernel.Money `json:"unit_price"`
	Total          kernel.Money `json:"total"`
	Status         string       `json:"status"`
	ClientUsername string       `json:"client_username"`
	DeliveryStatus string       `json:"delivery_status"`
}

func positiveID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name+" id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
