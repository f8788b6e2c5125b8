package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// supplierLines yields (order_id, product_id, quantity) for every order line
// whose product belongs to @supplier. An order whose direct product belongs to
// @supplier but none of whose lines do contributes its direct product instead,
// so an order is in scope when its direct product or any line is owned.
const supplierLines = `
	supplier_lines AS (
		SELECT ol.order_id, ol.product_id, ol.quantity
		FROM order_lines ol
		JOIN products lp ON lp.id = ol.product_id
		WHERE lp.supplier_id = @supplier
		UNION ALL
		SELECT fo.id, fo.product_id, fo.quantity
		FROM orders fo
		JOIN products fp ON fp.id = fo.product_id
		WHERE fp.supplier_id = @supplier
		  AND NOT EXISTS (
			SELECT 1
			FROM order_lines x
			JOIN products xp ON xp.id = x.product_id
			WHERE x.order_id = fo.id AND xp.supplier_id = @supplier
		  )
	)`

type ListSupplierProductsQueryHandler struct {
	db *gorm.DB
}

func NewListSupplierProductsQueryHandler(db *gorm.DB) ListSupplierProductsQueryHandler {
	return ListSupplierProductsQueryHandler{db: db}
}

// Handle lists every product of the supplier, inactive ones included.
func (h ListSupplierProductsQueryHandler) Handle(ctx context.Context, query SupplierQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT`+productColumns+`
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.supplier_id = ?
		ORDER BY p.created_at DESC, p.id DESC
	`, query.SupplierID()).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

type ListSupplierOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListSupplierOrdersQueryHandler(db *gorm.DB) ListSupplierOrdersQueryHandler {
	return ListSupplierOrdersQueryHandler{db: db}
}

type supplierOrderRow struct {
	OrderID     int64
	CreatedAt   time.Time
	Status      string
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// Handle lists the orders touching the supplier, newest first, each with the
// supplier's own lines only.
func (h ListSupplierOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListSupplierOrdersQuery,
) ([]SupplierOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cond := newConditions().set("supplier", query.SupplierID())
	if query.status != "" {
		cond.add("o.status = @status", map[string]any{"status": query.status})
	}
	cond.dateRange("o.created_at", query.dates)

	var rows []supplierOrderRow
	err := h.db.WithContext(ctx).Raw(`
		WITH`+supplierLines+`
		SELECT
			o.id AS order_id,
			o.created_at,
			o.status,
			sl.product_id,
			p.name AS product_name,
			sl.quantity,
			p.price AS unit_price,
			p.price * sl.quantity AS subtotal
		FROM supplier_lines sl
		JOIN orders o ON o.id = sl.order_id
		JOIN products p ON p.id = sl.product_id
		`+cond.where()+`
		ORDER BY o.created_at DESC, o.id DESC, p.name
	`, cond.args).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]SupplierOrderResponse, 0)
	for _, row := range rows {
		if n := len(orders); n == 0 || orders[n-1].ID != row.OrderID {
			orders = append(orders, SupplierOrderResponse{
				ID:        row.OrderID,
				CreatedAt: row.CreatedAt,
				Status:    row.Status,
				Lines:     make([]SupplierOrderLineResponse, 0, 1),
			})
		}
		last := &orders[len(orders)-1]
		last.Lines = append(last.Lines, SupplierOrderLineResponse{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			Subtotal:    row.Subtotal,
		})
	}
	return orders, nil
}

type ListSupplierDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListSupplierDeliveriesQueryHandler(db *gorm.DB) ListSupplierDeliveriesQueryHandler {
	return ListSupplierDeliveriesQueryHandler{db: db}
}

// Handle lists the deliveries of the orders touching the supplier.
func (h ListSupplierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListSupplierDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cond := newConditions().set("supplier", query.SupplierID())
	cond.add("d.order_id IN (SELECT order_id FROM supplier_lines)", nil)
	if query.status != "" {
		cond.add("d.status = @status", map[string]any{"status": query.status})
	}
	cond.dateRange("o.created_at", query.dates)

	deliveries := make([]DeliveryResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		WITH`+supplierLines+`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		LEFT JOIN products p ON p.id = `+orderProduct+`
		`+cond.where()+`
		ORDER BY o.created_at DESC, d.id DESC
	`, cond.args).Scan(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

type GetSupplierDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetSupplierDashboardQueryHandler(db *gorm.DB) GetSupplierDashboardQueryHandler {
	return GetSupplierDashboardQueryHandler{db: db}
}

// Handle computes the supplier's counters. Pending deliveries are those in
// prep or in transit.
func (h GetSupplierDashboardQueryHandler) Handle(ctx context.Context, query SupplierQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	var dashboard DashboardResponse
	err := h.db.WithContext(ctx).Raw(`
		WITH`+supplierLines+`
		SELECT
			(SELECT COUNT(*) FROM products WHERE supplier_id = @supplier) AS total_products,
			(SELECT COUNT(DISTINCT order_id) FROM supplier_lines) AS total_orders,
			(SELECT COUNT(*) FROM deliveries
				WHERE order_id IN (SELECT order_id FROM supplier_lines)) AS total_deliveries,
			(SELECT COUNT(*) FROM deliveries
				WHERE order_id IN (SELECT order_id FROM supplier_lines)
				  AND status IN (@prep, @in_transit)) AS pending_deliveries,
			(SELECT COALESCE(SUM(quantity), 0) FROM supplier_lines) AS total_sold
	`, map[string]any{
		"supplier":   query.SupplierID(),
		"prep":       delivery.Prep.String(),
		"in_transit": delivery.InTransit.String(),
	}).Scan(&dashboard).Error
	if err != nil {
		return DashboardResponse{}, err
	}
	return dashboard, nil
}

type GetSupplierSalesQueryHandler struct {
	db *gorm.DB
}

func NewGetSupplierSalesQueryHandler(db *gorm.DB) GetSupplierSalesQueryHandler {
	return GetSupplierSalesQueryHandler{db: db}
}

// Handle groups sold quantities by product name and unit price, best sellers
// first.
func (h GetSupplierSalesQueryHandler) Handle(ctx context.Context, query SupplierQuery) ([]SalesResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sales := make([]SalesResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		WITH`+supplierLines+`
		SELECT
			p.name AS product_name,
			p.price AS unit_price,
			SUM(sl.quantity) AS quantity,
			SUM(sl.quantity * p.price) AS amount
		FROM supplier_lines sl
		JOIN products p ON p.id = sl.product_id
		GROUP BY p.name, p.price
		ORDER BY quantity DESC, p.name
	`, map[string]any{"supplier": query.SupplierID()}).Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

type ListSuppliersQueryHandler struct {
	db *gorm.DB
}

func NewListSuppliersQueryHandler(db *gorm.DB) ListSuppliersQueryHandler {
	return ListSuppliersQueryHandler{db: db}
}

// Handle lists every supplier by name.
func (h ListSuppliersQueryHandler) Handle(ctx context.Context, query ListSuppliersQuery) ([]SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	suppliers := make([]SupplierResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.user_id,
			s.name,
			s.email,
			s.phone,
			s.address,
			s.city,
			s.bank_account,
			s.commission_rate,
			s.approved,
			(SELECT COUNT(*) FROM products p WHERE p.supplier_id = s.id) AS product_count
		FROM suppliers s
		ORDER BY s.name, s.id
	`).Scan(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}
