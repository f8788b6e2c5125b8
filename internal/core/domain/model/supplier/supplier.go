package supplier

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrSupplierIsNotConstructed is returned when a Supplier was not created
	// through NewSupplier or RestoreSupplier.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

	// ErrIDAlreadyAssigned is returned when persistence tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("supplier id is already assigned")
)

var maxCommissionRate = decimal.NewFromInt(100)

// Details are the contact, banking and commission fields of a supplier.
type Details struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	City           string
	BankAccount    string
	CommissionRate decimal.Decimal
}

// Supplier is a vendor account.
//
// Supplier follows these invariants:
//   - The name is not blank
//   - The e-mail, when set, is a valid address
//   - The commission rate is a percentage in [0, 100]
//   - A self-registered supplier is linked to its user and starts unapproved
type Supplier struct {
	id       int64
	userID   *int64
	details  Details
	approved bool

	isConstructed bool
}

// NewSupplier creates an unapproved supplier. userID is nil for suppliers
// created by staff without a login.
func NewSupplier(userID *int64, details Details) (*Supplier, error) {
	s := &Supplier{userID: userID, isConstructed: true}
	if err := s.setDetails(details); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSupplier rebuilds a supplier from storage.
func RestoreSupplier(id int64, userID *int64, details Details, approved bool) (*Supplier, error) {
	s := &Supplier{userID: userID, approved: approved, isConstructed: true}

	var idErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	if err := errors.Join(idErr, s.setDetails(details)); err != nil {
		return nil, err
	}

	s.id = id
	return s, nil
}

// Validate ensures the Supplier instance was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// AssignID records the identity given by persistence. It can only be called once.
func (s *Supplier) AssignID(id int64) error {
	if s.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	s.id = id
	return nil
}

func (s *Supplier) ID() int64 {
	return s.id
}

func (s *Supplier) UserID() *int64 {
	return s.userID
}

func (s *Supplier) Name() string {
	return s.details.Name
}

func (s *Supplier) Email() string {
	return s.details.Email
}

// Details returns a copy of the editable fields.
func (s *Supplier) Details() Details {
	return s.details
}

func (s *Supplier) IsApproved() bool {
	return s.approved
}

// Approve allows the supplier to sell. Approving twice is a no-op.
func (s *Supplier) Approve() {
	s.approved = true
}

// Revoke withdraws the approval. Revoking twice is a no-op.
func (s *Supplier) Revoke() {
	s.approved = false
}

// UpdateDetails replaces the editable fields; the supplier is unchanged on error.
func (s *Supplier) UpdateDetails(details Details) error {
	return s.setDetails(details)
}

func (s *Supplier) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)

	var errList []error
	if d.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("email is invalid", err))
		}
	}
	if d.CommissionRate.IsNegative() || d.CommissionRate.GreaterThan(maxCommissionRate) {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"commission rate", d.CommissionRate.String(), 0, maxCommissionRate.String(),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	s.details = d
	return nil
}
