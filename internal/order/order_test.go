package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itsalanvarghese/Royal-liquor/internal/model"
)

func lookup(t *testing.T) ProductFunc {
	t.Helper()
	catalog := map[string]model.Product{
		"a": {ID: "a", Name: "Reposado", Price: decimal.RequireFromString("62.99")},
		"b": {ID: "b", Name: "Blanco", Price: decimal.RequireFromString("29.50")},
	}
	return func(id string) (model.Product, error) {
		p, ok := catalog[id]
		if !ok {
			return model.Product{}, errors.New("no such product")
		}
		return p, nil
	}
}

func TestCreateOrder(t *testing.T) {
	b := NewBook()
	lines := []model.CartLine{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
	}
	o, err := b.Create(lines, lookup(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(o.Number, "PO-") {
		t.Fatalf("unexpected order number %q", o.Number)
	}
	if len(o.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(o.Lines))
	}
	want := decimal.RequireFromString("155.48")
	if !o.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, o.Total)
	}
	if !o.Lines[0].Subtotal.Equal(decimal.RequireFromString("125.98")) {
		t.Fatalf("unexpected subtotal %s", o.Lines[0].Subtotal)
	}

	got, err := b.Get(o.Number)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Number != o.Number || !got.Total.Equal(o.Total) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateEmptyCart(t *testing.T) {
	b := NewBook()
	if _, err := b.Create(nil, lookup(t)); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCreateUnknownProduct(t *testing.T) {
	b := NewBook()
	_, err := b.Create([]model.CartLine{{ProductID: "zzz", Quantity: 1}}, lookup(t))
	if err == nil {
		t.Fatalf("expected lookup error")
	}
	if b.Len() != 0 {
		t.Fatalf("failed order must not be recorded")
	}
}

func TestOrderNumbersUnique(t *testing.T) {
	b := NewBook()
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		o, err := b.Create([]model.CartLine{{ProductID: "a", Quantity: 1}}, lookup(t))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[o.Number] {
			t.Fatalf("duplicate order number %q", o.Number)
		}
		seen[o.Number] = true
	}
}

func TestGetMissing(t *testing.T) {
	b := NewBook()
	if _, err := b.Get("PO-nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
