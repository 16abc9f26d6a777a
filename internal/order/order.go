// Package order turns cart snapshots into immutable purchase orders.
package order

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/itsalanvarghese/Royal-liquor/internal/model"
)

var (
	// ErrEmptyCart is returned when ordering with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotFound is returned when an order number is unknown.
	ErrNotFound = errors.New("order not found")
)

// ProductFunc resolves a product identifier to its current record.
type ProductFunc func(id string) (model.Product, error)

// Sequencer provides monotonically increasing sequence numbers.
type Sequencer struct{ n atomic.Uint64 }

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 { return s.n.Add(1) }

// Book stores created purchase orders by number.
type Book struct {
	mu  sync.RWMutex
	m   map[string]model.Order
	seq Sequencer
}

func NewBook() *Book {
	return &Book{m: make(map[string]model.Order)}
}

// Create prices the given cart lines and records a new order. The sequence
// suffix keeps numbers unique even when two orders land in the same second.
func (b *Book) Create(lines []model.CartLine, lookup ProductFunc) (model.Order, error) {
	if len(lines) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	now := time.Now().UTC()
	o := model.Order{
		Number:    fmt.Sprintf("PO-%s-%04d", now.Format("20060102150405"), b.seq.Next()),
		CreatedAt: now,
		Total:     decimal.Zero,
	}
	for _, line := range lines {
		p, err := lookup(line.ProductID)
		if err != nil {
			return model.Order{}, errors.Wrap(err, line.ProductID)
		}
		sub := p.Price.Mul(decimal.NewFromInt(line.Quantity))
		o.Lines = append(o.Lines, model.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
			Subtotal:  sub,
		})
		o.Total = o.Total.Add(sub)
	}
	b.mu.Lock()
	b.m[o.Number] = o
	b.mu.Unlock()
	return o, nil
}

// Get returns the order with the given number.
func (b *Book) Get(number string) (model.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.m[number]
	if !ok {
		return model.Order{}, errors.Wrap(ErrNotFound, number)
	}
	return o, nil
}

// Len returns the number of recorded orders.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.m)
}
