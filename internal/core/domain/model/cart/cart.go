package cart

import (
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// Cart maps product identifiers to requested quantities.
type Cart struct {
	items map[int64]int
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[int64]int)}
}

// RestoreCart rebuilds a cart from a stored mapping, skipping entries with
// a non-positive product id or a quantity outside 1..kernel.MaxQuantity.
func RestoreCart(items map[int64]int) *Cart {
	c := NewCart()
	for productID, quantity := range items {
		if productID > 0 && quantity > 0 && quantity <= kernel.MaxQuantity {
			c.items[productID] = quantity
		}
	}
	return c
}

// Add increments the quantity of productID, creating the entry if absent.
// A total above kernel.MaxQuantity is rejected and leaves the entry unchanged.
func (c *Cart) Add(productID int64, quantity int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product is invalid", fmt.Errorf("%d is not greater than 0", productID),
		)
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if current := c.items[productID]; quantity > kernel.MaxQuantity-current {
		return errs.NewValueIsOutOfRangeError("quantity", int64(current)+int64(quantity), 1, kernel.MaxQuantity)
	}
	c.items[productID] += quantity
	return nil
}

// Remove deletes the entry for productID. Removing an absent entry is a no-op.
func (c *Cart) Remove(productID int64) {
	delete(c.items, productID)
}

// Quantity returns the requested quantity of productID, 0 when absent.
func (c *Cart) Quantity(productID int64) int {
	return c.items[productID]
}

// Items returns a copy of the mapping.
func (c *Cart) Items() map[int64]int {
	items := make(map[int64]int, len(c.items))
	for k, v := range c.items {
		items[k] = v
	}
	return items
}

// ProductIDs returns the distinct products in ascending order.
func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Line is a priced cart entry.
type Line struct {
	Product  *product.Product
	Quantity int
	Subtotal kernel.Money
}

// Summary is the priced view of a cart.
type Summary struct {
	Lines []Line
	Total kernel.Money
}

// Summarize prices the cart against the given products, keyed by id. Entries
// without a matching product are dropped. Lines are ordered by product id.
//
// Example:
//
//	products, _ := repo.GetByIDs(ctx, c.ProductIDs())
//	summary := cart.Summarize(c, products)
//	// summary.Total == sum(price × quantity)
func Summarize(c *Cart, products map[int64]*product.Product) Summary {
	summary := Summary{Total: kernel.ZeroMoney()}
	for _, id := range c.ProductIDs() {
		p, ok := products[id]
		if !ok || p == nil {
			continue
		}
		quantity := c.items[id]
		subtotal := p.Price().Times(quantity)
		summary.Lines = append(summary.Lines, Line{Product: p, Quantity: quantity, Subtotal: subtotal})
		summary.Total = summary.Total.Add(subtotal)
	}
	return summary
}
