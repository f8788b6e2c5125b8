// Package supplierrepo persists suppliers.
package supplierrepo

import (
	"marketplace/internal/core/domain/model/supplier"

	"github.com/shopspring/decimal"
)

// SupplierDTO is the row of the suppliers table.
type SupplierDTO struct {
	ID             int64  `gorm:"primaryKey"`
	UserID         *int64 `gorm:"uniqueIndex"`
	Name           string
	Email          string
	Phone          string
	Address        string
	City           string
	BankAccount    string
	CommissionRate decimal.Decimal `gorm:"type:numeric(5,2)"`
	Approved       bool
}

// TableName overrides GORM's default naming convention.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func fromDomain(s *supplier.Supplier) SupplierDTO {
	d := s.Details()
	return SupplierDTO{
		ID:             s.ID(),
		UserID:         s.UserID(),
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Address:        d.Address,
		City:           d.City,
		BankAccount:    d.BankAccount,
		CommissionRate: d.CommissionRate,
		Approved:       s.IsApproved(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	return supplier.RestoreSupplier(dto.ID, dto.UserID, supplier.Details{
		Name:           dto.Name,
		Email:          dto.Email,
		Phone:          dto.Phone,
		Address:        dto.Address,
		City:           dto.City,
		BankAccount:    dto.BankAccount,
		CommissionRate: dto.CommissionRate,
	}, dto.Approved)
}
