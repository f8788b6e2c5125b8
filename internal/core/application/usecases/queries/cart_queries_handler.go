package queries

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/ports"
)

type GetCartQueryHandler struct {
	carts      ports.CartStore
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCartQueryHandler(carts ports.CartStore, uowFactory ports.UnitOfWorkFactory) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts, uowFactory: uowFactory}
}

// Handle resolves the cart's products. Products deleted since they were added
// are left out of the lines and the total.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	c, err := h.carts.Load(ctx, query.Session())
	if err != nil {
		return CartResponse{}, err
	}

	products, err := h.uowFactory.Create().ProductRepository().GetByIDs(ctx, c.ProductIDs())
	if err != nil {
		return CartResponse{}, err
	}

	summary := cart.Summarize(c, products)
	resp := CartResponse{
		Lines: make([]CartLineResponse, 0, len(summary.Lines)),
		Total: summary.Total,
	}
	for _, line := range summary.Lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ProductID: line.Product.ID(),
			Name:      line.Product.Name(),
			Slug:      line.Product.Slug(),
			Price:     line.Product.Price(),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}
	return resp, nil
}
