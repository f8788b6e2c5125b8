package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetPrincipalQueryIsNotConstructed = errors.New(
	"GetPrincipalQuery must be created via NewGetPrincipalQuery constructor",
)

// GetPrincipalQuery loads what an authenticated user may do: the staff flag
// and the supplier profile, if any.
type GetPrincipalQuery struct {
	userID int64
	guard  guard.ConstructorGuard
}

func NewGetPrincipalQuery(userID int64) (GetPrincipalQuery, error) {
	if err := positiveID("user", userID); err != nil {
		return GetPrincipalQuery{}, err
	}
	return GetPrincipalQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPrincipalQuery) Validate() error {
	return q.guard.Validate(ErrGetPrincipalQueryIsNotConstructed)
}

type PrincipalResponse struct {
	UserID           int64
	Username         string
	Email            string
	FullName         string
	IsStaff          bool
	SupplierID       *int64
	SupplierApproved bool
}
