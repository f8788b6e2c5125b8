package queries

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// ListProductsQuery returns the active catalog, newest first.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// GetProductQuery looks up an active product by slug.
type GetProductQuery struct {
	slug  string
	guard guard.ConstructorGuard
}

func NewGetProductQuery(slug string) (GetProductQuery, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("slug")
	}
	return GetProductQuery{slug: slug, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) Slug() string {
	return q.slug
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID              int64        `json:"id"`
	SupplierID      int64        `json:"supplier_id"`
	SupplierName    string       `json:"supplier_name"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	Price           kernel.Money `json:"price"`
	MinimumQuantity int          `json:"minimum_quantity"`
	Active          bool         `json:"active"`
	CreatedAt       time.Time    `json:"created_at"`
}

// OrderSummaryResponse is the short form of an order used in listings.
type OrderSummaryResponse struct {
	ID          int64        `json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	ProductID   *int64       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	Total       kernel.Money `json:"total"`
	Status      string       `json:"status"`
}

// ProductDetailResponse is a product together with its most recent order that
// has not been delivered yet.
type ProductDetailResponse struct {
	ProductResponse
	LastOpenOrder *OrderSummaryResponse `json:"last_open_order"`
}
