package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type orderRequest struct {
	Quantity int `json:"quantity" validate:"required,lte=2147483647"`
}

type orderCreatedResponse struct {
	ID       int64  `json:"id"`
	Location string `json:"location"`
}

// ListProducts handles GET /products.
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.queries.ListProducts.Handle(c.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/{slug}.
func (s *Server) GetProduct(c echo.Context) error {
	slug, err := pathString(c, "slug")
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductQuery(slug)
	if err != nil {
		return err
	}
	product, err := s.queries.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// CreateOrder handles POST /products/{slug}/orders. Anonymous orders are
// accepted and carry no client.
func (s *Server) CreateOrder(c echo.Context) error {
	slug, err := pathString(c, "slug")
	if err != nil {
		return err
	}
	var req orderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	var clientID *int64
	if principal, ok := principalFrom(c); ok {
		clientID = &principal.UserID
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, slug, req.Quantity)
	if err != nil {
		return err
	}
	id, err := s.commands.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	location := "/orders/" + strconv.FormatInt(id, 10)
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, orderCreatedResponse{ID: id, Location: location})
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	order, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
