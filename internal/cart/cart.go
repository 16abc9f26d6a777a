// Package cart aggregates item quantities for a checkout session.
package cart

import (
	"sync"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/itsalanvarghese/Royal-liquor/internal/model"
)

var (
	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrLineNotFound is returned when a cart line does not exist.
	ErrLineNotFound = errors.New("item not in cart")
)

// PriceFunc resolves a product identifier to its current unit price.
type PriceFunc func(id string) (decimal.Decimal, error)

// Cart accumulates quantities per product identifier. Quantities add up per
// identifier and a line disappears when its quantity reaches zero.
type Cart struct {
	mu    sync.Mutex
	lines map[string]int64
	order []string
}

func New() *Cart {
	return &Cart{lines: make(map[string]int64)}
}

// AddLine adds qty of the product to the cart, merging into an existing line.
func (c *Cart) AddLine(productID string, qty int64) error {
	if productID == "" {
		return errors.Wrap(ErrLineNotFound, "empty product id")
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lines[productID]; !ok {
		c.order = append(c.order, productID)
	}
	c.lines[productID] += qty
	return nil
}

// RemoveLine subtracts qty from the line, dropping it entirely when the
// quantity reaches zero or below.
func (c *Cart) RemoveLine(productID string, qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	have, ok := c.lines[productID]
	if !ok {
		return errors.Wrap(ErrLineNotFound, productID)
	}
	if have-qty <= 0 {
		c.drop(productID)
		return nil
	}
	c.lines[productID] = have - qty
	return nil
}

// SetLine overwrites the quantity of an existing line; zero or negative
// quantities delete the line.
func (c *Cart) SetLine(productID string, qty int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lines[productID]; !ok {
		return errors.Wrap(ErrLineNotFound, productID)
	}
	if qty <= 0 {
		c.drop(productID)
		return nil
	}
	c.lines[productID] = qty
	return nil
}

// drop must be called with the lock held.
func (c *Cart) drop(productID string) {
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, model.CartLine{ProductID: id, Quantity: c.lines[id]})
	}
	return out
}

// Total sums quantity times unit price over all lines.
func (c *Cart) Total(price PriceFunc) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range c.Lines() {
		p, err := price(line.ProductID)
		if err != nil {
			return decimal.Zero, errors.Wrap(err, line.ProductID)
		}
		total = total.Add(p.Mul(decimal.NewFromInt(line.Quantity)))
	}
	return total, nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]int64)
	c.order = nil
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}
