package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

const productColumns = `
	p.id,
	p.supplier_id,
	s.name AS supplier_name,
	p.name,
	p.slug,
	p.description,
	p.price,
	p.minimum_quantity,
	p.active,
	p.created_at`

// orderProduct resolves the product an order is about: the direct reference,
// or the first line when the order has none.
const orderProduct = `COALESCE(o.product_id, (
		SELECT ol.product_id FROM order_lines ol WHERE ol.order_id = o.id ORDER BY ol.id LIMIT 1
	))`

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns active products, most recently listed first.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT` + productColumns + `
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.active
		ORDER BY p.created_at DESC, p.id DESC
	`).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product detail. Inactive and unknown slugs are reported
// as not found alike.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductDetailResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var products []ProductResponse
	err := db.Raw(`
		SELECT`+productColumns+`
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.slug = ? AND p.active
	`, query.Slug()).Scan(&products).Error
	if err != nil {
		return ProductDetailResponse{}, err
	}
	if len(products) == 0 {
		return ProductDetailResponse{}, errs.NewObjectNotFoundError("product", query.Slug())
	}

	detail := ProductDetailResponse{ProductResponse: products[0]}

	var orders []OrderSummaryResponse
	err = db.Raw(`
		SELECT
			o.id,
			o.created_at,
			o.product_id,
			?::text AS product_name,
			o.quantity,
			o.quantity * ?::numeric AS total,
			o.status
		FROM orders o
		WHERE o.status <> ?
		  AND (o.product_id = ? OR EXISTS (
				SELECT 1 FROM order_lines ol WHERE ol.order_id = o.id AND ol.product_id = ?
		  ))
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT 1
	`, detail.Name, detail.Price, order.Delivered.String(), detail.ID, detail.ID).Scan(&orders).Error
	if err != nil {
		return ProductDetailResponse{}, err
	}
	if len(orders) > 0 {
		detail.LastOpenOrder = &orders[0]
	}

	return detail, nil
}
