package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itsalanvarghese/Royal-liquor/internal/store"
)

const sample = "Barcode,Name,Price,Category,Size\n" +
	"123456789012,Reposado,$62.99,Tequila,750ml\n" +
	"036000291452,Blanco,\"$1,029.50\",Tequila,1L\n"

func TestSeed(t *testing.T) {
	s := store.New()
	n, err := seed(s, strings.NewReader(sample))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 created, got %d", n)
	}
	p, err := s.Read("123456789012")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if p.Name != "Reposado" || p.Category != "Tequila" || p.Size != "750ml" {
		t.Fatalf("unexpected record: %+v", p)
	}
	if !p.Price.Equal(decimal.RequireFromString("62.99")) {
		t.Fatalf("unexpected price %s", p.Price)
	}
	p, err = s.Read("036000291452")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !p.Price.Equal(decimal.RequireFromString("1029.50")) {
		t.Fatalf("comma price not parsed: %s", p.Price)
	}
}

func TestSeedBOMHeader(t *testing.T) {
	s := store.New()
	n, err := seed(s, strings.NewReader("\ufeff"+sample))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 created, got %d", n)
	}
}

func TestSeedSkipsDuplicates(t *testing.T) {
	s := store.New()
	if _, err := seed(s, strings.NewReader(sample)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := seed(s, strings.NewReader(sample))
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected duplicates skipped, created %d", n)
	}
}

func TestSeedMissingColumn(t *testing.T) {
	s := store.New()
	if _, err := seed(s, strings.NewReader("Barcode,Name\n1,x\n")); err == nil {
		t.Fatalf("expected error for missing Price column")
	}
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := store.New()
	n, err := Seed(s, path)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 created, got %d", n)
	}
	if _, err := Seed(s, filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParsePrice(t *testing.T) {
	for in, want := range map[string]string{
		"$62.99":    "62.99",
		"62.99":     "62.99",
		"$1,234.50": "1234.50",
		" $5 ":      "5",
	} {
		got, err := ParsePrice(in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParsePrice(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParsePrice(""); err == nil {
		t.Fatalf("expected error for empty price")
	}
	if _, err := ParsePrice("$abc"); err == nil {
		t.Fatalf("expected error for junk price")
	}
}
