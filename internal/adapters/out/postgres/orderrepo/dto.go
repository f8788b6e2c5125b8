// Package orderrepo persists orders together with their lines.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey"`
	ClientID  *int64 `gorm:"index"`
	ProductID *int64 `gorm:"index"`
	Quantity  int
	CreatedAt time.Time
	Status    string         `gorm:"type:varchar(20);index"`
	Lines     []OrderLineDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the row of the order_lines table.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"index"`
	ProductID int64 `gorm:"index"`
	Quantity  int
}

// TableName overrides GORM's default naming convention.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   o.ID(),
			ProductID: l.ProductID(),
			Quantity:  l.Quantity(),
		})
	}

	return OrderDTO{
		ID:        o.ID(),
		ClientID:  o.ClientID(),
		ProductID: o.ProductID(),
		Quantity:  o.Quantity(),
		CreatedAt: o.CreatedAt(),
		Status:    o.Status().String(),
		Lines:     lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := order.NewLine(l.ProductID, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, dto.ClientID, dto.ProductID, dto.Quantity, dto.CreatedAt, status, lines)
}
