/*
Package cart - cart and wishlist aggregates and order pricing

Invariants held by the Cart aggregate:
  - no two lines share a (product id, size, color) key
  - every line has 0 < quantity <= MaxLineQuantity
  - the cart total never exceeds MaxTotal
  - a line's snapshot is the product as it was when first added

The aggregates are plain in-memory values. Persistence is the job of the
application layer, which writes the whole aggregate after each mutation.
*/
package cart

import (
	"time"

	"storefront/domain/catalog"
)

const (
	// MaxLineQuantity is the most units a single line may hold.
	MaxLineQuantity = 10000
	// MaxTotal bounds the cart total in minor units so that shipping and tax
	// can be added to it without overflowing int64.
	MaxTotal int64 = 1_000_000_000_000_000
)

// Cart aggregate root - ordered line items, unique by LineKey
type Cart struct {
	lines []Line
	now   func() time.Time
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{now: time.Now}
}

// Rebuild reconstructs a cart from persisted lines. Lines sharing a key are
// merged and lines with an out of range quantity are dropped, so a corrupted
// payload still yields a cart that satisfies the invariants.
func Rebuild(lines []Line) *Cart {
	c := NewCart()
	for _, l := range lines {
		if l.key.ProductID == "" || l.quantity <= 0 || l.quantity > MaxLineQuantity {
			continue
		}
		if i := c.indexOf(l.key); i >= 0 {
			if q, ok := addQuantity(c.lines[i].quantity, l.quantity); ok {
				prev := c.lines[i].quantity
				c.lines[i].quantity = q
				if _, ok := c.checkedTotal(); !ok {
					c.lines[i].quantity = prev
				}
			}
			continue
		}
		l.snapshot = l.snapshot.clone()
		c.lines = append(c.lines, l)
		if _, ok := c.checkedTotal(); !ok {
			c.lines = c.lines[:len(c.lines)-1]
		}
	}
	return c
}

// ============================================================================
// Behavior
// ============================================================================

// Add puts quantity units of product with the given variant in the cart.
// An existing line with the same key has quantity added to it; otherwise a
// new line is appended with a snapshot of product taken now. A line may not
// hold more than MaxLineQuantity units and the cart total may not exceed
// MaxTotal; either violation leaves the cart unchanged.
func (c *Cart) Add(product catalog.Product, quantity int, variant Variant) error {
	if product.ID == "" {
		return NewInvalidProductError()
	}
	if quantity <= 0 {
		return NewInvalidQuantityError(quantity)
	}

	key := LineKey{ProductID: product.ID, Variant: variant}
	if i := c.indexOf(key); i >= 0 {
		q, ok := addQuantity(c.lines[i].quantity, quantity)
		if !ok {
			return NewQuantityOverflowError(c.lines[i].quantity, quantity)
		}
		prev := c.lines[i].quantity
		c.lines[i].quantity = q
		if _, ok := c.checkedTotal(); !ok {
			c.lines[i].quantity = prev
			return ErrTotalOverflow
		}
		return nil
	}
	if quantity > MaxLineQuantity {
		return NewQuantityOverflowError(0, quantity)
	}

	c.lines = append(c.lines, Line{
		key:      key,
		quantity: quantity,
		snapshot: SnapshotOf(product),
		addedAt:  c.now(),
	})
	if _, ok := c.checkedTotal(); !ok {
		c.lines = c.lines[:len(c.lines)-1]
		return ErrTotalOverflow
	}
	return nil
}

// Remove deletes the line with the given key. It reports whether a line was
// removed; removing an absent key is not an error.
func (c *Cart) Remove(productID string, variant Variant) bool {
	i := c.indexOf(LineKey{ProductID: productID, Variant: variant})
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity replaces the quantity of a line. quantity <= 0 removes it.
// It reports whether the cart changed. Quantities above MaxLineQuantity, or
// ones that push the total past MaxTotal, are rejected without a change.
func (c *Cart) SetQuantity(productID string, variant Variant, quantity int) (bool, error) {
	if quantity <= 0 {
		return c.Remove(productID, variant), nil
	}
	i := c.indexOf(LineKey{ProductID: productID, Variant: variant})
	if i < 0 {
		return false, nil
	}
	if quantity > MaxLineQuantity {
		return false, NewQuantityOverflowError(0, quantity)
	}
	prev := c.lines[i].quantity
	if prev == quantity {
		return false, nil
	}
	c.lines[i].quantity = quantity
	if _, ok := c.checkedTotal(); !ok {
		c.lines[i].quantity = prev
		return false, ErrTotalOverflow
	}
	return true, nil
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// ============================================================================
// Queries
// ============================================================================

// Lines returns a copy of the lines in insertion order
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	for i, l := range c.lines {
		l.snapshot = l.snapshot.clone()
		lines[i] = l
	}
	return lines
}

// Line returns the line with the given key.
func (c *Cart) Line(productID string, variant Variant) (Line, bool) {
	i := c.indexOf(LineKey{ProductID: productID, Variant: variant})
	if i < 0 {
		return Line{}, false
	}
	return c.lines[i], true
}

// Total is the sum of snapshot price × quantity; 0 for an empty cart.
// Mutations keep it within MaxTotal.
func (c *Cart) Total() int64 {
	total, _ := c.checkedTotal()
	return total
}

// Count is the sum of quantities, not the number of distinct lines.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

func (c *Cart) Len() int      { return len(c.lines) }
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) indexOf(key LineKey) int {
	for i, l := range c.lines {
		if l.key == key {
			return i
		}
	}
	return -1
}

func addQuantity(a, b int) (int, bool) {
	if b > MaxLineQuantity-a {
		return 0, false
	}
	return a + b, true
}

// checkedTotal sums line subtotals and reports false once the running total
// leaves [0, MaxTotal].
func (c *Cart) checkedTotal() (int64, bool) {
	var total int64
	for _, l := range c.lines {
		sub, ok := l.checkedSubtotal()
		if !ok || sub > MaxTotal-total {
			return 0, false
		}
		total += sub
	}
	return total, true
}
