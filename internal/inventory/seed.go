// Package inventory seeds the store from a CSV inventory file.
package inventory

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/itsalanvarghese/Royal-liquor/internal/model"
	"github.com/itsalanvarghese/Royal-liquor/internal/store"
)

// required CSV columns; Category and Size are optional.
var requiredColumns = []string{"Barcode", "Name", "Price"}

// Seed loads products from the CSV file at path into the store and returns
// how many records were created. Rows whose barcode already exists are
// skipped, so re-seeding an existing store is harmless.
func Seed(s *store.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open inventory file")
	}
	defer f.Close()
	return seed(s, f)
}

func seed(s *store.Store, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return 0, errors.Wrap(err, "read header")
	}
	if len(header) > 0 {
		// exports from spreadsheet tools often carry a utf-8 BOM
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return 0, errors.Errorf("missing required column %s", name)
		}
	}

	created := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, errors.Wrap(err, "read row")
		}
		p := model.Product{
			ID:   strings.TrimSpace(row[cols["Barcode"]]),
			Name: strings.TrimSpace(row[cols["Name"]]),
		}
		if i, ok := cols["Category"]; ok && i < len(row) {
			p.Category = strings.TrimSpace(row[i])
		}
		if i, ok := cols["Size"]; ok && i < len(row) {
			p.Size = strings.TrimSpace(row[i])
		}
		p.Price, err = ParsePrice(row[cols["Price"]])
		if err != nil {
			return created, errors.Wrapf(err, "barcode %s", p.ID)
		}
		if err := s.Create(p); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				continue
			}
			return created, errors.Wrapf(err, "barcode %s", p.ID)
		}
		created++
	}
	return created, nil
}

// ParsePrice converts a price string such as "$1,234.50" into a decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, errors.New("empty price")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "parse price")
	}
	return d, nil
}
