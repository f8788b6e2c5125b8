package http

import (
	"errors"
	"net/http"

	"marketplace/internal/auth"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// statusOf maps application errors onto HTTP status codes.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrQuantityBelowMinimum):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// newError builds the response body. Internal failures never leak their cause.
func newError(status int, err error) Error {
	body := Error{Code: status, Message: err.Error()}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(httpErr.Code)
		}
	}

	var denied *errs.AccessDeniedError
	if errors.As(err, &denied) {
		body.Reason = denied.Reason
	}

	if status == http.StatusInternalServerError {
		body.Message = "internal server error"
	}
	return body
}

// errorHandler is installed as the echo HTTPErrorHandler.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusOf(err)
	logger := log.Ctx(c.Request().Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, newError(status, err))
	}
	if writeErr != nil {
		logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}
