package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type signUpRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"max=255"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	IsStaff   bool      `json:"is_staff"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// SignUp handles POST /signup.
func (s *Server) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd := commands.NewSignUpCommand(req.Username, req.Email, req.FullName, req.Password)
	id, err := s.commands.SignUp.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Login handles POST /login and returns a bearer token.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return err
	}
	result, err := s.commands.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	token, expiresAt, err := s.tokens.Issue(result.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    result.UserID,
		Username:  result.Username,
		IsStaff:   result.IsStaff,
	})
}

// ListMyOrders handles GET /me/orders.
func (s *Server) ListMyOrders(c echo.Context) error {
	principal, _ := principalFrom(c)
	filter, err := bindListFilter(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(principal.UserID, filter.Status)
	if err != nil {
		return err
	}
	orders, err := s.queries.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
