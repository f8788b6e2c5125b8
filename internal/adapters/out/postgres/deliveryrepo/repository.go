package deliveryrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add inserts a new delivery and assigns the generated id.
// An order holds at most one delivery.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return errs.NewValueIsInvalidErrorWithCause("order already has a delivery", err)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return errs.NewObjectNotFoundErrorWithCause("order", dto.OrderID, err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update writes every column of an existing delivery.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "order_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", dto.ID)
	}
	return nil
}

// Get retrieves a delivery by id.
func (r *GormDeliveryRepository) Get(ctx context.Context, id int64) (*delivery.Delivery, error) {
	return r.first(ctx, id, "id = ?", id)
}

// GetByOrderID retrieves the delivery of an order.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	return r.first(ctx, orderID, "order_id = ?", orderID)
}

func (r *GormDeliveryRepository) first(ctx context.Context, key any, query string, args ...any) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
