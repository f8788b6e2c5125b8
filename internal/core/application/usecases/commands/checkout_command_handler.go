package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog/log"
)

// ErrCartIsEmpty is returned when checking out a session without cart entries.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")

// CheckoutCommandHandler creates one order and one delivery per distinct cart
// product in a single transaction.
//
// Business rules:
//   - Either every order and delivery is committed or none is
//   - The cart is kept when the checkout fails and cleared once it is committed
//   - The confirmation e-mail is best-effort; its failure is only logged
type CheckoutCommandHandler struct {
	uowFactory OrderingUoWFactory
	carts      ports.CartStore
	notifier   ports.Notifier
	now        func() time.Time
}

func NewCheckoutCommandHandler(
	uowFactory OrderingUoWFactory,
	carts ports.CartStore,
	notifier ports.Notifier,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	c, err := h.carts.Load(ctx, cmd.Session())
	if err != nil {
		return CheckoutResult{}, err
	}
	if c.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	result, summary, err := h.placeOrders(ctx, cmd, c)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = h.carts.Delete(ctx, cmd.Session()); err != nil {
		log.Ctx(ctx).Warn().Err(err).Ints64("order_ids", result.OrderIDs).Msg("failed to clear cart after checkout")
	}

	h.notify(ctx, cmd, result, summary)
	return result, nil
}

func (h CheckoutCommandHandler) placeOrders(
	ctx context.Context, cmd CheckoutCommand, c *cart.Cart,
) (CheckoutResult, cart.Summary, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, cart.Summary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := c.ProductIDs()
	products, err := uow.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return CheckoutResult{}, cart.Summary{}, err
	}

	now := h.now()
	customerID := cmd.Customer().UserID
	result := CheckoutResult{
		OrderIDs:    make([]int64, 0, len(ids)),
		DeliveryIDs: make([]int64, 0, len(ids)),
		PlacedAt:    now,
	}

	for _, id := range ids {
		p, ok := products[id]
		if !ok || !p.IsActive() {
			return CheckoutResult{}, cart.Summary{}, errs.NewObjectNotFoundError("product", id)
		}
		quantity := c.Quantity(id)
		if err = p.CheckQuantity(quantity); err != nil {
			return CheckoutResult{}, cart.Summary{}, err
		}

		o, err := order.NewOrder(&customerID, p.ID(), quantity, now)
		if err != nil {
			return CheckoutResult{}, cart.Summary{}, err
		}
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return CheckoutResult{}, cart.Summary{}, err
		}

		d, err := delivery.NewDelivery(o.ID(), cmd.Details())
		if err != nil {
			return CheckoutResult{}, cart.Summary{}, err
		}
		if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
			return CheckoutResult{}, cart.Summary{}, err
		}

		result.OrderIDs = append(result.OrderIDs, o.ID())
		result.DeliveryIDs = append(result.DeliveryIDs, d.ID())
		result.DeliveryAmount = d.Amount()
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, cart.Summary{}, err
	}

	summary := cart.Summarize(c, products)
	result.ProductsTotal = summary.Total
	result.Total = summary.Total.Add(result.DeliveryAmount)
	return result, summary, nil
}

func (h CheckoutCommandHandler) notify(
	ctx context.Context, cmd CheckoutCommand, result CheckoutResult, summary cart.Summary,
) {
	customer := cmd.Customer()
	if h.notifier == nil || customer.Email == "" {
		return
	}

	lines := make([]ports.ConfirmationLine, 0, len(summary.Lines))
	for _, l := range summary.Lines {
		lines = append(lines, ports.ConfirmationLine{
			ProductName: l.Product.Name(),
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal,
		})
	}

	err := h.notifier.NotifyOrdersPlaced(ctx, ports.OrderConfirmation{
		To:             customer.Email,
		CustomerName:   customer.Name,
		OrderIDs:       result.OrderIDs,
		Lines:          lines,
		ProductsTotal:  result.ProductsTotal,
		DeliveryAmount: result.DeliveryAmount,
		Total:          result.Total,
		Address:        cmd.Details().Address,
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Ints64("order_ids", result.OrderIDs).Msg("order confirmation was not sent")
	}
}
