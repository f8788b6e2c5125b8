package supplierrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplierRepository implements ports.SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Add inserts a new supplier and assigns the generated id.
func (r *GormSupplierRepository) Add(ctx context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("user already has a supplier profile", err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update writes every column of an existing supplier.
func (r *GormSupplierRepository) Update(ctx context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SupplierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supplier", dto.ID)
	}
	return nil
}

// Delete removes a supplier; its products go with it.
func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&SupplierDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supplier", id)
	}
	return nil
}

// Get retrieves a supplier by id.
func (r *GormSupplierRepository) Get(ctx context.Context, id int64) (*supplier.Supplier, error) {
	return r.first(ctx, id, "id = ?", id)
}

// GetByUserID retrieves the supplier profile of a user account.
func (r *GormSupplierRepository) GetByUserID(ctx context.Context, userID int64) (*supplier.Supplier, error) {
	return r.first(ctx, userID, "user_id = ?", userID)
}

func (r *GormSupplierRepository) first(ctx context.Context, key any, query string, args ...any) (*supplier.Supplier, error) {
	var dto SupplierDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
