// Package model defines domain types used by the service.
package model

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrValidation is returned when a record or patch fails validation.
var ErrValidation = errors.New("validation failed")

// Product represents a single inventory item keyed by its barcode.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Size     string          `json:"size,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

// Validate checks the invariants required before a product enters the store.
func (p Product) Validate() error {
	if p.ID == "" {
		return errors.Wrap(ErrValidation, "id is required")
	}
	if p.Name == "" {
		return errors.Wrap(ErrValidation, "name is required")
	}
	if p.Price.IsNegative() {
		return errors.Wrap(ErrValidation, "price must be >= 0")
	}
	return nil
}

// ProductPatch carries a partial update. Nil fields are left unchanged;
// the identifier itself cannot be patched.
type ProductPatch struct {
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	Size     *string          `json:"size,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// Validate checks the patch fields that carry invariants of their own.
func (p ProductPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return errors.Wrap(ErrValidation, "name must not be empty")
	}
	if p.Price != nil && p.Price.IsNegative() {
		return errors.Wrap(ErrValidation, "price must be >= 0")
	}
	return nil
}

// CartLine is one aggregated cart position.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// OrderLine is a priced snapshot of a cart line at order time.
type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is an immutable purchase order created from a cart snapshot.
type Order struct {
	Number    string          `json:"order_number"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
}
