package http

import (
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Accepted forms of a scheduled delivery date, most specific first.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type cartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=2147483647"`
}

type checkoutRequest struct {
	Transport   string `json:"transport"`
	Address     string `json:"address" validate:"max=500"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ScheduledAt string `json:"scheduled_at"`
}

type checkoutResponse struct {
	OrderIDs       []int64      `json:"order_ids"`
	DeliveryIDs    []int64      `json:"delivery_ids"`
	ProductsTotal  kernel.Money `json:"products_total"`
	DeliveryAmount kernel.Money `json:"delivery_amount"`
	Total          kernel.Money `json:"total"`
	PlacedAt       time.Time    `json:"placed_at"`
}

// GetCart handles GET /cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(cartSession(c))
	if err != nil {
		return err
	}
	cart, err := s.queries.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// AddCartItem handles POST /cart/items/{productID}. A missing quantity adds one unit.
func (s *Server) AddCartItem(c echo.Context) error {
	productID, err := pathInt64(c, "productID")
	if err != nil {
		return err
	}
	var req cartItemRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cmd, err := commands.NewAddCartItemCommand(cartSession(c), productID, req.Quantity)
	if err != nil {
		return err
	}
	if err = s.commands.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetCart(c)
}

// RemoveCartItem handles DELETE /cart/items/{productID}.
func (s *Server) RemoveCartItem(c echo.Context) error {
	productID, err := pathInt64(c, "productID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(cartSession(c), productID)
	if err != nil {
		return err
	}
	if err = s.commands.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.GetCart(c)
}

// Checkout handles POST /checkout. An unreadable amount falls back to the
// transport tariff and an unreadable date leaves the delivery unscheduled.
func (s *Server) Checkout(c echo.Context) error {
	principal, _ := principalFrom(c)
	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	details := delivery.Details{
		Transport:   delivery.Transport(strings.TrimSpace(req.Transport)),
		Address:     req.Address,
		Amount:      parseOptionalAmount(c, req.Amount),
		Description: req.Description,
		ScheduledAt: parseOptionalSchedule(c, req.ScheduledAt),
	}
	customer := commands.Customer{
		UserID: principal.UserID,
		Email:  principal.Email,
		Name:   principal.DisplayName(),
	}

	cmd, err := commands.NewCheckoutCommand(cartSession(c), customer, details)
	if err != nil {
		return err
	}
	result, err := s.commands.Checkout.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, checkoutResponse{
		OrderIDs:       result.OrderIDs,
		DeliveryIDs:    result.DeliveryIDs,
		ProductsTotal:  result.ProductsTotal,
		DeliveryAmount: result.DeliveryAmount,
		Total:          result.Total,
		PlacedAt:       result.PlacedAt,
	})
}

func parseOptionalAmount(c echo.Context, raw string) *kernel.Money {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	amount, err := kernel.ParseMoney(raw)
	if err != nil {
		log.Ctx(c.Request().Context()).Debug().Err(err).Str("amount", raw).Msg("ignoring unreadable amount")
		return nil
	}
	return &amount
}

func parseOptionalSchedule(c echo.Context, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	scheduledAt, err := parseSchedule(raw)
	if err != nil {
		log.Ctx(c.Request().Context()).Debug().Err(err).Msg("ignoring unreadable scheduled date")
		return nil
	}
	return &scheduledAt
}
