// Package upc validates and normalises product barcodes.
package upc

import (
	"strings"

	"github.com/go-faster/errors"
)

// ErrInvalid is returned for barcodes that fail validation.
var ErrInvalid = errors.New("invalid upc")

// Normalize strips spaces and hyphens from a barcode.
func Normalize(code string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, code)
}

// Validate normalises the barcode and checks it is a plausible UPC-E (8),
// UPC-A (12) or EAN-13 (13) code. The UPC-A check digit is verified.
// It returns the cleaned barcode.
func Validate(code string) (string, error) {
	cleaned := Normalize(code)
	if cleaned == "" {
		return "", errors.Wrap(ErrInvalid, "barcode cannot be empty")
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", errors.Wrap(ErrInvalid, "must contain only digits")
		}
	}
	switch len(cleaned) {
	case 8, 13:
	case 12:
		if !checksumOK(cleaned) {
			return "", errors.Wrap(ErrInvalid, "checksum verification failed")
		}
	default:
		return "", errors.Wrap(ErrInvalid, "length must be 8, 12 or 13 digits")
	}
	return cleaned, nil
}

// checksumOK verifies the mod-10 check digit of a 12-digit UPC-A code.
func checksumOK(code string) bool {
	sum := 0
	for i := 0; i < 11; i++ {
		d := int(code[i] - '0')
		if i%2 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	check := (10 - sum%10) % 10
	return check == int(code[11]-'0')
}
