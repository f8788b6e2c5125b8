package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Slug            string `json:"slug" validate:"max=200"`
	Description     string `json:"description"`
	Price           string `json:"price" validate:"required"`
	MinimumQuantity int    `json:"minimum_quantity" validate:"gte=0,lte=2147483647"`
	Active          *bool  `json:"active"`
}

func (r productRequest) details() (product.Details, error) {
	price, err := kernel.ParseMoney(strings.TrimSpace(r.Price))
	if err != nil {
		return product.Details{}, err
	}

	d := product.Details{
		Name:            r.Name,
		Slug:            r.Slug,
		Description:     r.Description,
		Price:           price,
		MinimumQuantity: r.MinimumQuantity,
		Active:          true,
	}
	if d.MinimumQuantity == 0 {
		d.MinimumQuantity = 1
	}
	if r.Active != nil {
		d.Active = *r.Active
	}
	return d, nil
}

type supplierRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"max=50"`
	Address        string `json:"address"`
	City           string `json:"city" validate:"max=100"`
	BankAccount    string `json:"bank_account" validate:"max=100"`
	CommissionRate string `json:"commission_rate"`
}

func (r supplierRequest) details() (supplier.Details, error) {
	rate := decimal.Zero
	if raw := strings.TrimSpace(r.CommissionRate); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return supplier.Details{}, errs.NewValueIsInvalidErrorWithCause("commission rate", err)
		}
		rate = parsed
	}

	return supplier.Details{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		City:           r.City,
		BankAccount:    r.BankAccount,
		CommissionRate: rate,
	}, nil
}

// RegisterSupplier handles POST /supplier/register. The profile starts unapproved.
func (s *Server) RegisterSupplier(c echo.Context) error {
	principal, _ := principalFrom(c)
	var req supplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterSupplierCommand(principal.UserID, details)
	if err != nil {
		return err
	}
	id, err := s.commands.RegisterSupplier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

func (s *Server) supplierQuery(c echo.Context) (queries.SupplierQuery, error) {
	return queries.NewSupplierQuery(supplierFrom(c).SupplierID)
}

// GetSupplierDashboard handles GET /supplier/dashboard.
func (s *Server) GetSupplierDashboard(c echo.Context) error {
	query, err := s.supplierQuery(c)
	if err != nil {
		return err
	}
	dashboard, err := s.queries.GetSupplierDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// ListSupplierProducts handles GET /supplier/products.
func (s *Server) ListSupplierProducts(c echo.Context) error {
	query, err := s.supplierQuery(c)
	if err != nil {
		return err
	}
	products, err := s.queries.ListSupplierProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /supplier/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(supplierFrom(c).SupplierID, details)
	if err != nil {
		return err
	}
	id, err := s.commands.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateProduct handles PUT /supplier/products/{id}.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}
	var req productRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(supplierFrom(c).SupplierID, id, details)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /supplier/products/{id}.
func (s *Server) DeleteProduct(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(supplierFrom(c).SupplierID, id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSupplierSales handles GET /supplier/sales.
func (s *Server) GetSupplierSales(c echo.Context) error {
	query, err := s.supplierQuery(c)
	if err != nil {
		return err
	}
	sales, err := s.queries.GetSupplierSales.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// ListSupplierOrders handles GET /supplier/orders.
func (s *Server) ListSupplierOrders(c echo.Context) error {
	filter, err := bindListFilter(c)
	if err != nil {
		return err
	}
	dates, err := queries.ParseDateRange(filter.From, filter.To)
	if err != nil {
		return err
	}

	query, err := queries.NewListSupplierOrdersQuery(supplierFrom(c).SupplierID, filter.Status, dates)
	if err != nil {
		return err
	}
	orders, err := s.queries.ListSupplierOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListSupplierDeliveries handles GET /supplier/deliveries.
func (s *Server) ListSupplierDeliveries(c echo.Context) error {
	filter, err := bindListFilter(c)
	if err != nil {
		return err
	}
	dates, err := queries.ParseDateRange(filter.From, filter.To)
	if err != nil {
		return err
	}

	query, err := queries.NewListSupplierDeliveriesQuery(supplierFrom(c).SupplierID, filter.Status, dates)
	if err != nil {
		return err
	}
	deliveries, err := s.queries.ListSupplierDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliveries)
}

// MarkOrderReady handles POST /supplier/orders/{id}/ready.
func (s *Server) MarkOrderReady(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderReadyCommand(supplierFrom(c).SupplierID, id)
	if err != nil {
		return err
	}
	if err = s.commands.MarkOrderReady.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
