package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPrincipalQueryHandler struct {
	db *gorm.DB
}

func NewGetPrincipalQueryHandler(db *gorm.DB) GetPrincipalQueryHandler {
	return GetPrincipalQueryHandler{db: db}
}

func (h GetPrincipalQueryHandler) Handle(ctx context.Context, query GetPrincipalQuery) (PrincipalResponse, error) {
	if err := query.Validate(); err != nil {
		return PrincipalResponse{}, err
	}

	var principals []PrincipalResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id AS user_id,
			u.username,
			u.email,
			u.full_name,
			u.is_staff,
			s.id AS supplier_id,
			COALESCE(s.approved, FALSE) AS supplier_approved
		FROM users u
		LEFT JOIN suppliers s ON s.user_id = u.id
		WHERE u.id = ?
	`, query.userID).Scan(&principals).Error
	if err != nil {
		return PrincipalResponse{}, err
	}
	if len(principals) == 0 {
		return PrincipalResponse{}, errs.NewObjectNotFoundError("user", query.userID)
	}
	return principals[0], nil
}
