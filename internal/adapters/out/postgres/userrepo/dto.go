// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"marketplace/internal/core/domain/model/user"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID           int64 `gorm:"primaryKey"`
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	IsStaff      bool
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		IsStaff:      u.IsStaff(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		dto.ID, dto.Username, dto.Email, dto.FullName, dto.PasswordHash, dto.IsStaff, dto.CreatedAt,
	)
}
