package services

import (
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ReasonOrderOutsideScope is the denial reason when no order line belongs to the supplier.
const ReasonOrderOutsideScope = "no order line belongs to the supplier"

// SupplierScope restricts supplier actions to orders touching the supplier's
// own products. owned is the set of product ids owned by the supplier.
type SupplierScope struct {
	supplierID int64
	owned      map[int64]struct{}
}

// NewSupplierScope builds a scope from the ids of the supplier's products.
func NewSupplierScope(supplierID int64, ownedProductIDs []int64) SupplierScope {
	owned := make(map[int64]struct{}, len(ownedProductIDs))
	for _, id := range ownedProductIDs {
		owned[id] = struct{}{}
	}
	return SupplierScope{supplierID: supplierID, owned: owned}
}

func (s SupplierScope) SupplierID() int64 {
	return s.supplierID
}

// HasLineIn reports whether at least one order line's product is owned.
func (s SupplierScope) HasLineIn(o *order.Order) bool {
	for _, l := range o.Lines() {
		if s.owns(l.ProductID()) {
			return true
		}
	}
	return false
}

// MarkReady moves o to in_progress when one of its lines belongs to the
// supplier. The order is unchanged on any error.
func (s SupplierScope) MarkReady(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !s.HasLineIn(o) {
		return errs.NewAccessDeniedError("order", o.ID(), ReasonOrderOutsideScope)
	}
	return o.MarkReady()
}

func (s SupplierScope) owns(productID int64) bool {
	_, ok := s.owned[productID]
	return ok
}
