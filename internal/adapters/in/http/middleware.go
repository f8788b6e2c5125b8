package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	headerRequestID   = "X-Request-ID"
	cartSessionCookie = "cart_session"
	cartSessionMaxAge = 7 * 24 * time.Hour

	principalKey = "principal"
	supplierKey  = "supplier"
)

// requestLogger tags the request with an id, attaches a logger carrying it
// to the request context and logs the outcome.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(headerRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, requestID)

			logger := log.With().Str("request_id", requestID).Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

			if err := next(c); err != nil {
				c.Error(err)
			}

			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("ip", c.RealIP()).
				Msg("HTTP Request")
			return nil
		}
	}
}

// identify resolves the bearer token, when present, into a Principal.
// A malformed or expired token is rejected even on public routes.
func (s *Server) identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fmt.Errorf("%w: malformed authorization header", auth.ErrUnauthenticated)
		}

		userID, err := s.tokens.Parse(token)
		if err != nil {
			return err
		}

		principal, err := s.loadPrincipal(c, userID)
		if err != nil {
			return err
		}
		c.Set(principalKey, principal)

		ctx := log.Ctx(c.Request().Context()).With().Int64("user_id", userID).Logger().
			WithContext(c.Request().Context())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func (s *Server) loadPrincipal(c echo.Context, userID int64) (auth.Principal, error) {
	query, err := queries.NewGetPrincipalQuery(userID)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %w", auth.ErrUnauthenticated, err)
	}

	resp, err := s.queries.GetPrincipal.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return auth.Principal{}, fmt.Errorf("%w: account no longer exists", auth.ErrUnauthenticated)
		}
		return auth.Principal{}, err
	}

	principal := auth.Principal{
		UserID:   resp.UserID,
		Username: resp.Username,
		Email:    resp.Email,
		FullName: resp.FullName,
		IsStaff:  resp.IsStaff,
	}
	if resp.SupplierID != nil {
		principal.Supplier = &auth.SupplierCapability{SupplierID: *resp.SupplierID, Approved: resp.SupplierApproved}
	}
	return principal, nil
}

// requireAuth rejects anonymous requests.
func requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := principalFrom(c); !ok {
			return fmt.Errorf("%w: authentication required", auth.ErrUnauthenticated)
		}
		return next(c)
	}
}

// requireStaff lets only back-office staff through.
func requireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := principalFrom(c)
		if !ok {
			return fmt.Errorf("%w: authentication required", auth.ErrUnauthenticated)
		}
		if err := principal.RequireStaff(); err != nil {
			return err
		}
		return next(c)
	}
}

// requireSupplier lets only approved suppliers through and exposes their
// capability to the handlers.
func requireSupplier(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := principalFrom(c)
		if !ok {
			return fmt.Errorf("%w: authentication required", auth.ErrUnauthenticated)
		}
		capability, err := principal.RequireSupplier()
		if err != nil {
			return err
		}
		c.Set(supplierKey, capability)
		return next(c)
	}
}

func principalFrom(c echo.Context) (auth.Principal, bool) {
	principal, ok := c.Get(principalKey).(auth.Principal)
	return principal, ok
}

func supplierFrom(c echo.Context) auth.SupplierCapability {
	capability, _ := c.Get(supplierKey).(auth.SupplierCapability)
	return capability
}

// cartSession returns the session key of the caller's cart, issuing a new
// cookie when the request carries none or an unreadable one.
func cartSession(c echo.Context) kernel.UUID {
	if session, ok := c.Get(cartSessionCookie).(kernel.UUID); ok {
		return session
	}
	if cookie, err := c.Cookie(cartSessionCookie); err == nil {
		if session, parseErr := kernel.UUIDFromString(cookie.Value); parseErr == nil {
			c.Set(cartSessionCookie, session)
			return session
		}
	}

	session := kernel.NewUUID()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    session.String(),
		Path:     "/",
		MaxAge:   int(cartSessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(cartSessionCookie, session)
	return session
}
