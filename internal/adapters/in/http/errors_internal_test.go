package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"marketplace/internal/auth"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(payload{})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("product", 1), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("order", 2)), http.StatusNotFound},
		{"invalid value", errs.NewValueIsInvalidError("transport"), http.StatusUnprocessableEntity},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), http.StatusUnprocessableEntity},
		{"required", errs.NewValueIsRequiredError("address"), http.StatusUnprocessableEntity},
		{"below minimum", errs.NewQuantityBelowMinimumError("Rice", 2, 5), http.StatusUnprocessableEntity},
		{"validator", validationErr, http.StatusUnprocessableEntity},
		{"access denied", errs.NewAccessDeniedError("product", 3, "outside_scope"), http.StatusForbidden},
		{"unauthenticated", auth.ErrUnauthenticated, http.StatusUnauthorized},
		{"bad credentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "bad body"), http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestNewError(t *testing.T) {
	t.Run("should carry the denial reason", func(t *testing.T) {
		err := auth.Principal{UserID: 7}.RequireStaff()

		body := newError(http.StatusForbidden, err)

		assert.Equal(t, http.StatusForbidden, body.Code)
		assert.Equal(t, auth.ReasonStaffRequired, body.Reason)
	})

	t.Run("should hide internal causes", func(t *testing.T) {
		body := newError(http.StatusInternalServerError, errors.New("pq: password authentication failed"))

		assert.Equal(t, "internal server error", body.Message)
		assert.Empty(t, body.Reason)
	})

	t.Run("should use the echo message", func(t *testing.T) {
		body := newError(http.StatusBadRequest, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter id"))

		assert.Equal(t, "Invalid format for parameter id", body.Message)
	})
}
