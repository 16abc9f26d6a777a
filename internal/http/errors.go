package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/itsalanvarghese/Royal-liquor/internal/cart"
	"github.com/itsalanvarghese/Royal-liquor/internal/model"
	"github.com/itsalanvarghese/Royal-liquor/internal/order"
	"github.com/itsalanvarghese/Royal-liquor/internal/store"
	"github.com/itsalanvarghese/Royal-liquor/internal/upc"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		WriteJSONError(w, http.StatusBadRequest, "duplicate_key", err.Error())
	case errors.Is(err, store.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, order.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, cart.ErrLineNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity):
		WriteJSONError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
	case errors.Is(err, model.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, upc.ErrInvalid):
		WriteJSONError(w, http.StatusBadRequest, "invalid_upc", err.Error())
	case errors.Is(err, order.ErrEmptyCart):
		WriteJSONError(w, http.StatusBadRequest, "empty_cart", err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
