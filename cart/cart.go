package cart

import (
	"fmt"

	"github.com/mosburgers/poscore/domain"
)

// Totals is the reconciled money view of a cart:
// Total = Subtotal - DiscountAmount, with
// DiscountAmount = Subtotal * pct/100 rounded to whole currency units.
type Totals struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discount_amount"`
	Total          int64 `json:"total"`
}

// Cart assembles one in-progress order: item snapshots taken at add
// time, in insertion order, plus a discount percentage. It is not safe
// for concurrent use; the owning engine serializes access.
type Cart struct {
	lines    []domain.CartLine
	discount float64
}

func New() *Cart {
	return &Cart{}
}

// AddItem puts qty units of the item snapshot into the cart. Adding an
// item already present merges into the existing line instead of
// duplicating it.
func (c *Cart) AddItem(item domain.FoodItem, qty int) error {
	if qty < 1 {
		return domain.NewValidationError("quantity", "must be at least 1")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrOutOfStock, item.Name)
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, domain.CartLine{Item: item, Quantity: qty})
	return nil
}

// SetQuantity replaces a line's quantity. A quantity of zero or less
// removes the line. Stock is not re-checked here; the coordinator
// validates availability at commit.
func (c *Cart) SetQuantity(itemID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) RemoveItem(itemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetDiscount stores the discount percentage, clamped to [0, 100].
func (c *Cart) SetDiscount(pct float64) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	c.discount = pct
}

func (c *Cart) Discount() float64 {
	return c.discount
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Totals() Totals {
	var subtotal int64
	for _, line := range c.lines {
		subtotal += line.Item.Price * int64(line.Quantity)
	}
	discount := domain.DiscountValue(subtotal, c.discount)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

// Clear resets the cart to empty with no discount.
func (c *Cart) Clear() {
	c.lines = nil
	c.discount = 0
}
