package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type deliveryRequest struct {
	Transport   string `json:"transport"`
	Address     string `json:"address" validate:"max=500"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ScheduledAt string `json:"scheduled_at"`
	Status      string `json:"status"`
}

// command builds the upsert. Unlike checkout, unreadable values are rejected.
func (r deliveryRequest) command(orderID int64) (commands.UpdateDeliveryCommand, error) {
	details := delivery.Details{
		Transport:   delivery.Transport(strings.TrimSpace(r.Transport)),
		Address:     r.Address,
		Description: r.Description,
	}

	if raw := strings.TrimSpace(r.Amount); raw != "" {
		amount, err := kernel.ParseMoney(raw)
		if err != nil {
			return commands.UpdateDeliveryCommand{}, err
		}
		details.Amount = &amount
	}

	if raw := strings.TrimSpace(r.ScheduledAt); raw != "" {
		scheduledAt, err := parseSchedule(raw)
		if err != nil {
			return commands.UpdateDeliveryCommand{}, err
		}
		details.ScheduledAt = &scheduledAt
	}

	var status *delivery.Status
	if raw := strings.TrimSpace(r.Status); raw != "" {
		parsed, err := delivery.ParseStatus(raw)
		if err != nil {
			return commands.UpdateDeliveryCommand{}, err
		}
		status = &parsed
	}

	return commands.NewUpdateDeliveryCommand(orderID, details, status)
}

type backofficeSupplierRequest struct {
	supplierRequest
	Approved bool `json:"approved"`
}

// ListOrders handles GET /backoffice/orders.
func (s *Server) ListOrders(c echo.Context) error {
	records, err := s.filteredOrders(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// ExportOrdersCSV handles GET /backoffice/orders/export.csv.
func (s *Server) ExportOrdersCSV(c echo.Context) error {
	records, err := s.filteredOrders(c)
	if err != nil {
		return err
	}

	setAttachment(c, "orders.csv")
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeOrdersCSV(c.Response(), records)
}

// ExportOrdersJSON handles GET /backoffice/orders/export.json.
func (s *Server) ExportOrdersJSON(c echo.Context) error {
	records, err := s.filteredOrders(c)
	if err != nil {
		return err
	}

	setAttachment(c, "orders.json")
	return c.JSON(http.StatusOK, records)
}

func (s *Server) filteredOrders(c echo.Context) ([]queries.OrderRecord, error) {
	filter, err := bindListFilter(c)
	if err != nil {
		return nil, err
	}
	query, err := queries.NewListOrdersQuery(filter.Status, filter.Search)
	if err != nil {
		return nil, err
	}
	return s.queries.ListOrders.Handle(c.Request().Context(), query)
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}

// UpdateDelivery handles PUT /backoffice/orders/{id}/delivery, creating the
// delivery when the order has none.
func (s *Server) UpdateDelivery(c echo.Context) error {
	orderID, err := pathInt64(c, "id")
	if err != nil {
		return err
	}
	var req deliveryRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := req.command(orderID)
	if err != nil {
		return err
	}
	id, err := s.commands.UpdateDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createdResponse{ID: id})
}

// ListDeliveries handles GET /backoffice/deliveries.
func (s *Server) ListDeliveries(c echo.Context) error {
	filter, err := bindListFilter(c)
	if err != nil {
		return err
	}
	dates, err := queries.ParseDateRange(filter.From, filter.To)
	if err != nil {
		return err
	}

	query, err := queries.NewListDeliveriesQuery(filter.Status, dates)
	if err != nil {
		return err
	}
	deliveries, err := s.queries.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliveries)
}

// ChangeDeliveryStatus handles POST /backoffice/deliveries/{id}/status/{status}.
func (s *Server) ChangeDeliveryStatus(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}
	raw, err := pathString(c, "status")
	if err != nil {
		return err
	}
	status, err := delivery.ParseStatus(raw)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(id, status)
	if err != nil {
		return err
	}
	if err = s.commands.ChangeDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSuppliers handles GET /backoffice/suppliers.
func (s *Server) ListSuppliers(c echo.Context) error {
	suppliers, err := s.queries.ListSuppliers.Handle(c.Request().Context(), queries.NewListSuppliersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// CreateSupplier handles POST /backoffice/suppliers.
func (s *Server) CreateSupplier(c echo.Context) error {
	var req backofficeSupplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	id, err := s.commands.CreateSupplier.Handle(
		c.Request().Context(), commands.NewCreateSupplierCommand(details, req.Approved),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateSupplier handles PUT /backoffice/suppliers/{id}.
func (s *Server) UpdateSupplier(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}
	var req supplierRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSupplierCommand(id, details)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateSupplier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteSupplier handles DELETE /backoffice/suppliers/{id}.
func (s *Server) DeleteSupplier(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteSupplierCommand(id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteSupplier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ApproveSupplier handles POST /backoffice/suppliers/{id}/approve.
func (s *Server) ApproveSupplier(c echo.Context) error {
	return s.setApproval(c, true)
}

// RevokeSupplier handles POST /backoffice/suppliers/{id}/revoke.
func (s *Server) RevokeSupplier(c echo.Context) error {
	return s.setApproval(c, false)
}

func (s *Server) setApproval(c echo.Context, approved bool) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetSupplierApprovalCommand(id, approved)
	if err != nil {
		return err
	}
	if err = s.commands.SetSupplierApproval.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// parseSchedule reads a scheduled date in any of scheduleLayouts.
func parseSchedule(raw string) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"scheduled date is invalid", fmt.Errorf("%q matches no accepted layout", raw),
	)
}
