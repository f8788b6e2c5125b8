package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDAlreadyAssigned is returned when persistence tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Line is one product quantity of an order.
type Line struct {
	productID int64
	quantity  int
}

// NewLine validates a (product, quantity) pair.
func NewLine(productID int64, quantity int) (Line, error) {
	if err := errors.Join(validateProductID(productID), validateQuantity(quantity)); err != nil {
		return Line{}, err
	}
	return Line{productID: productID, quantity: quantity}, nil
}

// ProductID returns the ordered product.
func (l Line) ProductID() int64 {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Order is a customer's request for one or more product quantities.
//
// Order follows these invariants:
//   - The quantity is positive
//   - An order references a product directly, through its lines, or both
//   - The status is always one of Statuses()
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by persistence; 0 until the order is stored
	id int64

	// clientID is the ordering user (nil for anonymous orders)
	clientID *int64

	// productID is the direct product reference (nil for line-only orders)
	productID *int64

	quantity  int
	createdAt time.Time
	status    Status
	lines     []Line

	isConstructed bool
}

// NewOrder creates a pending order for a single product. The order carries the
// direct product reference and one mirroring line, so line-based reports and
// supplier checks see it.
//
// Example:
//
//	if err := p.CheckQuantity(qty); err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(&clientID, p.ID(), qty, time.Now())
func NewOrder(clientID *int64, productID int64, quantity int, createdAt time.Time) (*Order, error) {
	line, err := NewLine(productID, quantity)
	if err != nil {
		return nil, err
	}

	o := &Order{
		clientID:      clientID,
		productID:     &productID,
		quantity:      quantity,
		createdAt:     createdAt,
		status:        Pending,
		lines:         []Line{line},
		isConstructed: true,
	}
	return o, nil
}

// RestoreOrder rebuilds an order from storage, validating every field.
func RestoreOrder(
	id int64,
	clientID *int64,
	productID *int64,
	quantity int,
	createdAt time.Time,
	status Status,
	lines []Line,
) (*Order, error) {
	var productErr error
	if productID != nil {
		productErr = validateProductID(*productID)
	} else if len(lines) == 0 {
		productErr = errs.NewValueIsRequiredError("product or lines")
	}

	if err := errors.Join(
		validateID(id),
		productErr,
		validateQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		productID:     productID,
		quantity:      quantity,
		createdAt:     createdAt,
		status:        status,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identity given by persistence. It can only be called once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if err := validateID(id); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) ClientID() *int64 {
	return o.clientID
}

func (o *Order) ProductID() *int64 {
	return o.productID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// ProductIDs returns the direct product followed by the line products, without duplicates.
func (o *Order) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(o.lines)+1)
	ids := make([]int64, 0, len(o.lines)+1)
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if o.productID != nil {
		add(*o.productID)
	}
	for _, l := range o.lines {
		add(l.productID)
	}
	return ids
}

// SyncStatus sets the status derived from the order's delivery.
func (o *Order) SyncStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// MarkReady moves the order to InProgress on a supplier's request.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateProductID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > kernel.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, kernel.MaxQuantity)
	}
	return nil
}
