package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a new user and assigns the generated id.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username is already taken", err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	return r.first(ctx, id, "id = ?", id)
}

// GetByUsername retrieves a user by its login name.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.first(ctx, username, "username = ?", username)
}

func (r *GormUserRepository) first(ctx context.Context, key any, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
