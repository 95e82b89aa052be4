// internal/domain/cart/cart.go
package cart

import (
	"errors"

	"github.com/alcho-id/alcho-backend/internal/domain/catalog"
)

// ErrInvalidQuantity is returned by AddItem for quantities below 1.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// LineItem is one (product, variant, quantity) entry of a cart. At most one
// line item exists per (product code, pack label) pair at any time.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Variant  catalog.Variant `json:"variant"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line item's unit price times its quantity. Carton prices
// never enter cart math.
func (li LineItem) Subtotal() int64 {
	return li.Variant.UnitPrice * int64(li.Quantity)
}

// Cart holds the line items of one browser session. It is a plain in-memory
// store with no locking: all mutations happen inside discrete user-triggered
// calls that never interleave on the same instance. Construct one per
// session with New; there is no shared singleton.
type Cart struct {
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Restore builds a cart from previously saved line items, e.g. a session
// cart loaded from Redis.
func Restore(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, len(items))}
	copy(c.items, items)
	return c
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// AddItem adds quantity units of the given variant. If a line item for the
// same (product code, pack label) already exists its quantity is
// incremented, never duplicated. Quantity must be at least 1; there is no
// upper bound.
func (c *Cart) AddItem(product catalog.Product, variant catalog.Variant, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if i := c.indexOf(product.Code, variant.PackLabel); i >= 0 {
		c.items[i].Quantity += quantity
		return nil
	}

	c.items = append(c.items, LineItem{
		Product:  product,
		Variant:  variant,
		Quantity: quantity,
	})
	return nil
}

// RemoveItem deletes the matching line item. Removing an absent item is a
// silent no-op, not an error.
func (c *Cart) RemoveItem(productCode, packLabel string) {
	if i := c.indexOf(productCode, packLabel); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity replaces the matching line item's quantity. A quantity of
// zero or below behaves exactly like RemoveItem. Updating an absent item is
// a silent no-op.
func (c *Cart) UpdateQuantity(productCode, packLabel string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productCode, packLabel)
		return
	}
	if i := c.indexOf(productCode, packLabel); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// ItemCount returns the sum of all quantities, not the number of distinct
// line items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of unit price times quantity over all line items.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Contains reports whether a line item for the given pair exists.
func (c *Cart) Contains(productCode, packLabel string) bool {
	return c.indexOf(productCode, packLabel) >= 0
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) indexOf(productCode, packLabel string) int {
	for i, item := range c.items {
		if item.Product.Code == productCode && item.Variant.PackLabel == packLabel {
			return i
		}
	}
	return -1
}
