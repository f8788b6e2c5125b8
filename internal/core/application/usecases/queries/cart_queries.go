package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery shows the cart of a session.
type GetCartQuery struct {
	session kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetCartQuery(session kernel.UUID) (GetCartQuery, error) {
	if err := session.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{session: session, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Session() kernel.UUID {
	return q.session
}

type CartLineResponse struct {
	ProductID int64        `json:"product_id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Price     kernel.Money `json:"price"`
	Quantity  int          `json:"quantity"`
	Subtotal  kernel.Money `json:"subtotal"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total kernel.Money       `json:"total"`
}
