package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

const deliveryColumns = `
	d.id,
	d.order_id,
	d.transport,
	d.address,
	d.amount,
	d.description,
	d.scheduled_at,
	d.actual_at,
	d.assigned_at,
	d.delivered_at,
	d.status,
	o.created_at AS order_created_at,
	COALESCE(p.name, '') AS product_name`

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its lines and, when one exists, its delivery.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var orders []OrderDetailResponse
	err := db.Raw(`
		SELECT
			o.id,
			o.client_id,
			o.product_id,
			COALESCE(p.name, '') AS product_name,
			o.quantity,
			o.created_at,
			o.status
		FROM orders o
		LEFT JOIN products p ON p.id = `+orderProduct+`
		WHERE o.id = ?
	`, query.ID()).Scan(&orders).Error
	if err != nil {
		return OrderDetailResponse{}, err
	}
	if len(orders) == 0 {
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.ID())
	}
	detail := orders[0]

	detail.Lines = make([]OrderLineResponse, 0)
	err = db.Raw(`
		SELECT
			ol.product_id,
			p.name AS product_name,
			s.id AS supplier_id,
			s.name AS supplier_name,
			ol.quantity,
			p.price AS unit_price,
			p.price * ol.quantity AS subtotal
		FROM order_lines ol
		JOIN products p ON p.id = ol.product_id
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE ol.order_id = ?
		ORDER BY ol.id
	`, query.ID()).Scan(&detail.Lines).Error
	if err != nil {
		return OrderDetailResponse{}, err
	}

	var deliveries []DeliveryResponse
	err = db.Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		LEFT JOIN products p ON p.id = `+orderProduct+`
		WHERE d.order_id = ?
	`, query.ID()).Scan(&deliveries).Error
	if err != nil {
		return OrderDetailResponse{}, err
	}
	if len(deliveries) > 0 {
		detail.Delivery = &deliveries[0]
	}

	return detail, nil
}

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle lists the client's orders, newest first.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cond := newConditions()
	cond.add("o.client_id = @client", map[string]any{"client": query.clientID})
	if query.status != nil {
		cond.add("o.status = @status", map[string]any{"status": query.status.String()})
	}

	orders := make([]OrderSummaryResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.created_at,
			o.product_id,
			COALESCE(p.name, '') AS product_name,
			o.quantity,
			COALESCE(p.price, 0) * o.quantity AS total,
			o.status
		FROM orders o
		LEFT JOIN products p ON p.id = `+orderProduct+`
		`+cond.where()+`
		ORDER BY o.created_at DESC, o.id DESC
	`, cond.args).Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the filtered orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cond := newConditions()
	if query.status != nil {
		cond.add("o.status = @status", map[string]any{"status": query.status.String()})
	}
	cond.search("o.id", "p.name", query.search)

	records := make([]OrderRecord, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.created_at,
			COALESCE(p.name, '') AS product_name,
			COALESCE(s.name, '') AS supplier_name,
			o.quantity,
			COALESCE(p.price, 0) AS unit_price,
			COALESCE(p.price, 0) * o.quantity AS total,
			o.status,
			COALESCE(u.username, '') AS client_username,
			COALESCE(d.status, '') AS delivery_status
		FROM orders o
		LEFT JOIN products p ON p.id = `+orderProduct+`
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN users u ON u.id = o.client_id
		LEFT JOIN deliveries d ON d.order_id = o.id
		`+cond.where()+`
		ORDER BY o.created_at DESC, o.id DESC
	`, cond.args).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle returns the filtered deliveries ordered by order date, newest first.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cond := newConditions()
	if query.status != nil {
		cond.add("d.status = @status", map[string]any{"status": query.status.String()})
	}
	cond.dateRange("o.created_at", query.dates)

	deliveries := make([]DeliveryResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
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
