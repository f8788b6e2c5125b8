// Package deliveryrepo persists deliveries.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryDTO is the row of the deliveries table.
type DeliveryDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderID     int64 `gorm:"uniqueIndex"`
	Transport   string
	Address     string
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Description string
	ScheduledAt *time.Time
	ActualAt    *time.Time
	AssignedAt  *time.Time
	DeliveredAt *time.Time
	Status      string `gorm:"type:varchar(20);index"`
}

// TableName overrides GORM's default naming convention.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	s := d.Snapshot()
	return DeliveryDTO{
		ID:          s.ID,
		OrderID:     s.OrderID,
		Transport:   string(s.Transport),
		Address:     s.Address,
		Amount:      s.Amount.Decimal(),
		Description: s.Description,
		ScheduledAt: s.ScheduledAt,
		ActualAt:    s.ActualAt,
		AssignedAt:  s.AssignedAt,
		DeliveredAt: s.DeliveredAt,
		Status:      s.Status.String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	transport, err := delivery.ParseTransport(dto.Transport)
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:          dto.ID,
		OrderID:     dto.OrderID,
		Transport:   transport,
		Address:     dto.Address,
		Amount:      amount,
		Description: dto.Description,
		ScheduledAt: dto.ScheduledAt,
		ActualAt:    dto.ActualAt,
		AssignedAt:  dto.AssignedAt,
		DeliveredAt: dto.DeliveredAt,
		Status:      status,
	})
}
