// Package cart is the shopper's in-memory cart. It lives as long as the
// client session that owns it and is never persisted.
package cart

import (
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/shopspring/decimal"
)

var (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = decimal.NewFromInt(100)
	// FlatShipping is charged below the threshold.
	FlatShipping = decimal.RequireFromString("9.99")
)

// Line is one product variant in the cart.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Size     string         `json:"size"`
	Color    string         `json:"color"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) matches(productID, size, color string) bool {
	return l.Product.ID == productID && l.Size == size && l.Color == color
}

// Cart lines are keyed by (product id, size, color). Totals are derived
// from the lines on every read.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem adds quantity of the variant, merging into an existing line.
// Non-positive quantities are ignored.
func (c *Cart) AddItem(product models.Product, quantity int, size, color string) {
	if quantity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].matches(product.ID, size, color) {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity, Size: size, Color: color})
}

// RemoveItem drops the matching line, if any.
func (c *Cart) RemoveItem(productID, size, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID, size, color)
}

// UpdateQuantity sets the line's quantity; zero or less removes it.
func (c *Cart) UpdateQuantity(productID, size, color string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.remove(productID, size, color)
		return
	}
	for i := range c.lines {
		if c.lines[i].matches(productID, size, color) {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Line(nil), c.lines...)
}

// Total is the sum of price × quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

// Count is the number of units in the cart.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Shipping is free for an empty cart or a subtotal at the threshold.
func (c *Cart) Shipping() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shipping()
}

func (c *Cart) GrandTotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal().Add(c.shipping())
}

// OrderItems snapshots the lines as order items, prices frozen.
func (c *Cart) OrderItems() []models.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			Price:       l.Product.Price,
			Size:        l.Size,
			Color:       l.Color,
		})
	}
	return items
}

func (c *Cart) remove(productID, size, color string) {
	for i := range c.lines {
		if c.lines[i].matches(productID, size, color) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) shipping() decimal.Decimal {
	if len(c.lines) == 0 {
		return decimal.Zero
	}
	if c.subtotal().GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShipping
}
