package delivery

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrIDAlreadyAssigned is returned when persistence tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("delivery id is already assigned")
)

// Details are the fields editable through the delivery form.
// A nil Amount asks for the transport's default amount.
type Details struct {
	Transport   Transport
	Address     string
	Amount      *kernel.Money
	Description string
	ScheduledAt *time.Time
}

// Snapshot is the complete state of a delivery, used to restore it from storage
// and to map it back.
type Snapshot struct {
	ID          int64
	OrderID     int64
	Transport   Transport
	Address     string
	Amount      kernel.Money
	Description string
	ScheduledAt *time.Time
	ActualAt    *time.Time
	AssignedAt  *time.Time
	DeliveredAt *time.Time
	Status      Status
}

// Delivery tracks the fulfillment of one order.
//
// Delivery follows these invariants:
//   - It references exactly one order
//   - Its status only moves forward (see Status.ValidateTransition)
//   - AssignedAt, DeliveredAt and ActualAt are written at most once by ChangeStatus
type Delivery struct {
	id          int64
	orderID     int64
	transport   Transport
	address     string
	amount      kernel.Money
	description string

	// scheduledAt is the delivery date requested by the customer
	scheduledAt *time.Time

	// actualAt is when the parcel was actually handed over
	actualAt *time.Time

	// assignedAt is set when the delivery first enters in_transit
	assignedAt *time.Time

	// deliveredAt is set when the delivery first enters delivered
	deliveredAt *time.Time

	status Status

	isConstructed bool
}

// NewDelivery creates a delivery in prep for the given order.
//
// Example:
//
//	d, err := delivery.NewDelivery(o.ID(), delivery.Details{
//	    Transport: delivery.Moto,
//	    Address:   "12 rue des Lilas",
//	})
//	// d.Amount() is the moto tariff
func NewDelivery(orderID int64, details Details) (*Delivery, error) {
	d := &Delivery{
		status:        Prep,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.applyDetails(details),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from storage.
func RestoreDelivery(s Snapshot) (*Delivery, error) {
	d := &Delivery{
		amount:        s.Amount,
		address:       s.Address,
		description:   s.Description,
		scheduledAt:   s.ScheduledAt,
		actualAt:      s.ActualAt,
		assignedAt:    s.AssignedAt,
		deliveredAt:   s.DeliveredAt,
		isConstructed: true,
	}

	var idErr error
	if s.ID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", s.ID))
	}

	if err := errors.Join(
		idErr,
		d.setOrderID(s.OrderID),
		d.setTransport(s.Transport),
		d.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	d.id = s.ID
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// AssignID records the identity given by persistence. It can only be called once.
func (d *Delivery) AssignID(id int64) error {
	if d.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	d.id = id
	return nil
}

// Snapshot returns a copy of the complete state.
func (d *Delivery) Snapshot() Snapshot {
	return Snapshot{
		ID:          d.id,
		OrderID:     d.orderID,
		Transport:   d.transport,
		Address:     d.address,
		Amount:      d.amount,
		Description: d.description,
		ScheduledAt: d.scheduledAt,
		ActualAt:    d.actualAt,
		AssignedAt:  d.assignedAt,
		DeliveredAt: d.deliveredAt,
		Status:      d.status,
	}
}

func (d *Delivery) ID() int64 {
	return d.id
}

func (d *Delivery) OrderID() int64 {
	return d.orderID
}

func (d *Delivery) Transport() Transport {
	return d.transport
}

func (d *Delivery) Amount() kernel.Money {
	return d.amount
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) ActualAt() *time.Time {
	return d.actualAt
}

// UpdateDetails replaces the editable fields. A nil Amount resolves to the
// default amount of the (new) transport.
func (d *Delivery) UpdateDetails(details Details) error {
	return d.applyDetails(details)
}

// ChangeStatus moves the delivery to next and stamps the transition timestamps
// that are still unset.
//
// This method enforces the following business rules:
//   - next must be reachable from the current status
//   - in_transit stamps assignedAt if unset
//   - delivered stamps deliveredAt and actualAt if unset
//   - re-applying the current status changes nothing that is already set
//
// Example:
//
//	_ = d.ChangeStatus(delivery.InTransit, now)        // assignedAt = now
//	_ = d.ChangeStatus(delivery.InTransit, now.Add(1)) // assignedAt unchanged
func (d *Delivery) ChangeStatus(next Status, now time.Time) error {
	if err := d.status.ValidateTransition(next); err != nil {
		return err
	}

	switch next {
	case InTransit:
		if d.assignedAt == nil {
			d.assignedAt = &now
		}
	case Delivered:
		if d.deliveredAt == nil {
			d.deliveredAt = &now
		}
		if d.actualAt == nil {
			d.actualAt = &now
		}
	case Unknown, Prep, Returned:
	}

	d.status = next
	return nil
}

func (d *Delivery) applyDetails(details Details) error {
	if err := d.setTransport(details.Transport); err != nil {
		return err
	}
	d.address = details.Address
	d.description = details.Description
	d.scheduledAt = details.ScheduledAt
	d.amount = details.Transport.ResolveAmount(details.Amount)
	return nil
}

func (d *Delivery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order is invalid", fmt.Errorf("%d is not greater than 0", orderID))
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setTransport(t Transport) error {
	parsed, err := ParseTransport(string(t))
	if err != nil {
		return err
	}
	d.transport = parsed
	return nil
}

func (d *Delivery) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.status = s
	return nil
}
