package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/gosimple/slug"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrIDAlreadyAssigned is returned when persistence tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("product id is already assigned")
)

const maxNameLength = 200

// Details are the supplier-editable fields of a product.
// An empty Slug is derived from Name.
type Details struct {
	Name            string
	Slug            string
	Description     string
	Price           kernel.Money
	MinimumQuantity int
	Active          bool
}

// Product is an item sold by one supplier.
//
// Product follows these invariants:
//   - The name is not blank and the slug is a valid URL slug
//   - The minimum quantity is at least 1
//   - The owning supplier never changes
type Product struct {
	id         int64
	supplierID int64
	details    Details
	createdAt  time.Time

	isConstructed bool
}

// NewProduct creates a product owned by supplierID.
//
// Example:
//
//	p, err := product.NewProduct(supplierID, product.Details{
//	    Name:            "Widget",
//	    Price:           kernel.MoneyFromInt(250),
//	    MinimumQuantity: 5,
//	    Active:          true,
//	}, time.Now())
//	// p.Slug() == "widget"
func NewProduct(supplierID int64, details Details, createdAt time.Time) (*Product, error) {
	p := &Product{createdAt: createdAt, isConstructed: true}

	if err := errors.Join(
		p.setSupplierID(supplierID),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(id, supplierID int64, details Details, createdAt time.Time) (*Product, error) {
	p := &Product{createdAt: createdAt, isConstructed: true}

	var idErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	if err := errors.Join(
		idErr,
		p.setSupplierID(supplierID),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID records the identity given by persistence. It can only be called once.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) SupplierID() int64 {
	return p.supplierID
}

func (p *Product) Name() string {
	return p.details.Name
}

func (p *Product) Slug() string {
	return p.details.Slug
}

func (p *Product) Description() string {
	return p.details.Description
}

func (p *Product) Price() kernel.Money {
	return p.details.Price
}

func (p *Product) MinimumQuantity() int {
	return p.details.MinimumQuantity
}

func (p *Product) IsActive() bool {
	return p.details.Active
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// Details returns a copy of the editable fields.
func (p *Product) Details() Details {
	return p.details
}

// IsOwnedBy reports whether supplierID owns the product.
func (p *Product) IsOwnedBy(supplierID int64) bool {
	return p.supplierID == supplierID
}

// CheckQuantity validates a requested order quantity against the minimum.
//
// Example:
//
//	// "Widget" has a minimum of 5
//	err := p.CheckQuantity(3) // errs.ErrQuantityBelowMinimum
//	err = p.CheckQuantity(5)  // nil
func (p *Product) CheckQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > kernel.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, p.details.MinimumQuantity, kernel.MaxQuantity)
	}
	if quantity < p.details.MinimumQuantity {
		return errs.NewQuantityBelowMinimumError(p.details.Name, quantity, p.details.MinimumQuantity)
	}
	return nil
}

// Update replaces the editable fields. The slug is regenerated from the name
// when details.Slug is empty.
func (p *Product) Update(details Details) error {
	return p.setDetails(details)
}

func (p *Product) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"supplier is invalid", fmt.Errorf("%d is not greater than 0", supplierID),
		)
	}
	p.supplierID = supplierID
	return nil
}

func (p *Product) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Slug = strings.TrimSpace(d.Slug)
	if d.Slug == "" {
		d.Slug = slug.Make(d.Name)
	}

	var errList []error
	if d.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	} else if len(d.Name) > maxNameLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("name length", len(d.Name), 1, maxNameLength))
	}
	if d.Slug == "" && d.Name != "" {
		errList = append(errList, errs.NewValueIsRequiredError("slug"))
	} else if d.Slug != "" && !slug.IsSlug(d.Slug) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"slug is invalid", fmt.Errorf("%q is not a slug", d.Slug),
		))
	}
	if d.MinimumQuantity < 1 || d.MinimumQuantity > kernel.MaxQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("minimum quantity", d.MinimumQuantity, 1, kernel.MaxQuantity))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	p.details = d
	return nil
}
