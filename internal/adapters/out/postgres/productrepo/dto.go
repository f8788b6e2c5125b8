// Package productrepo persists products.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table.
type ProductDTO struct {
	ID              int64 `gorm:"primaryKey"`
	SupplierID      int64 `gorm:"index"`
	Name            string
	Slug            string `gorm:"uniqueIndex"`
	Description     string
	Price           decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinimumQuantity int
	Active          bool
	CreatedAt       time.Time
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID(),
		SupplierID:      p.SupplierID(),
		Name:            p.Name(),
		Slug:            p.Slug(),
		Description:     p.Description(),
		Price:           p.Price().Decimal(),
		MinimumQuantity: p.MinimumQuantity(),
		Active:          p.IsActive(),
		CreatedAt:       p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(dto.ID, dto.SupplierID, product.Details{
		Name:            dto.Name,
		Slug:            dto.Slug,
		Description:     dto.Description,
		Price:           price,
		MinimumQuantity: dto.MinimumQuantity,
		Active:          dto.Active,
	}, dto.CreatedAt)
}
