package auth

import (
	"marketplace/internal/pkg/errs"
)

// Reasons attached to supplier access denials.
const (
	ReasonSupplierProfileRequired = "supplier_profile_required"
	ReasonSupplierNotApproved     = "supplier_not_approved"
	ReasonStaffRequired           = "staff_required"
)

// SupplierCapability is the supplier profile linked to a principal.
type SupplierCapability struct {
	SupplierID int64
	Approved   bool
}

// Principal is the authenticated caller, resolved once per request.
type Principal struct {
	UserID   int64
	Username string
	Email    string
	FullName string
	IsStaff  bool
	Supplier *SupplierCapability
}

// RequireStaff denies non-staff principals.
func (p Principal) RequireStaff() error {
	if !p.IsStaff {
		return errs.NewAccessDeniedError("backoffice", p.UserID, ReasonStaffRequired)
	}
	return nil
}

// RequireSupplier returns the capability of an approved supplier. A user
// without a profile and an unapproved supplier are denied with distinct
// reasons.
func (p Principal) RequireSupplier() (SupplierCapability, error) {
	if p.Supplier == nil {
		return SupplierCapability{}, errs.NewAccessDeniedError("supplier", p.UserID, ReasonSupplierProfileRequired)
	}
	if !p.Supplier.Approved {
		return SupplierCapability{}, errs.NewAccessDeniedError(
			"supplier", p.Supplier.SupplierID, ReasonSupplierNotApproved,
		)
	}
	return *p.Supplier, nil
}

// DisplayName is the full name when set, the username otherwise.
func (p Principal) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}
