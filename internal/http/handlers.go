// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/itsalanvarghese/Royal-liquor/internal/cache"
	"github.com/itsalanvarghese/Royal-liquor/internal/cart"
	"github.com/itsalanvarghese/Royal-liquor/internal/config"
	"github.com/itsalanvarghese/Royal-liquor/internal/model"
	"github.com/itsalanvarghese/Royal-liquor/internal/obs"
	"github.com/itsalanvarghese/Royal-liquor/internal/order"
	"github.com/itsalanvarghese/Royal-liquor/internal/ratelimit"
	"github.com/itsalanvarghese/Royal-liquor/internal/store"
	"github.com/itsalanvarghese/Royal-liquor/internal/upc"
)

type App struct {
	Cfg     config.Config
	Store   *store.Store
	Cache   *cache.Cache
	Cart    *cart.Cart
	Orders  *order.Book
	Limiter *ratelimit.Limiter
	started time.Time
}

func NewApp(cfg config.Config, st *store.Store, c *cache.Cache, ct *cart.Cart, ob *order.Book, lim *ratelimit.Limiter) *App {
	return &App{Cfg: cfg, Store: st, Cache: c, Cart: ct, Orders: ob, Limiter: lim, started: time.Now()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func (a *App) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if !decodeJSON(w, r, &p) {
		return
	}
	if err := a.Cache.Create(p); err != nil {
		writeDomainError(w, err)
		return
	}
	obs.Logger.Info().
		Str("product_id", p.ID).
		Str("request_id", RequestIDFromContext(r.Context())).
		Msg("product_created")
	writeJSON(w, http.StatusCreated, p)
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Store.List())
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := a.Cache.Get(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *App) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch model.ProductPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	p, err := a.Cache.Update(id, patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	obs.Logger.Info().
		Str("product_id", id).
		Str("request_id", RequestIDFromContext(r.Context())).
		Msg("product_updated")
	writeJSON(w, http.StatusOK, p)
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := a.Cache.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	obs.Logger.Info().
		Str("product_id", id).
		Str("request_id", RequestIDFromContext(r.Context())).
		Msg("product_deleted")
	w.WriteHeader(http.StatusNoContent)
}

type lookupResponse struct {
	Found   bool            `json:"found"`
	Barcode string          `json:"barcode"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Size    string          `json:"size,omitempty"`
}

func (a *App) lookupHandler(w http.ResponseWriter, r *http.Request) {
	barcode, err := upc.Validate(mux.Vars(r)["barcode"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	p, err := a.Cache.Get(barcode)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lookupResponse{
		Found:   true,
		Barcode: p.ID,
		Name:    p.Name,
		Price:   p.Price,
		Size:    p.Size,
	})
}

type cartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type cartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type cartResponse struct {
	Items []cartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func (a *App) getCartHandler(w http.ResponseWriter, r *http.Request) {
	resp := cartResponse{Items: []cartItem{}, Total: decimal.Zero}
	for _, line := range a.Cart.Lines() {
		p, err := a.Cache.Get(line.ProductID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		sub := p.Price.Mul(decimal.NewFromInt(line.Quantity))
		resp.Items = append(resp.Items, cartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
			Subtotal:  sub,
		})
		resp.Total = resp.Total.Add(sub)
	}
	resp.Count = len(resp.Items)
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	// the product must exist before it can be carted
	if _, err := a.Cache.Get(req.ProductID); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := a.Cart.AddLine(req.ProductID, req.Quantity); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart_count": a.Cart.Len()})
}

func (a *App) updateCartHandler(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := a.Cart.SetLine(req.ProductID, req.Quantity); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart_count": a.Cart.Len()})
}

func (a *App) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	a.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	o, err := a.Orders.Create(a.Cart.Lines(), a.Cache.Get)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	a.Cart.Clear()
	obs.Logger.Info().
		Str("order_number", o.Number).
		Str("total", o.Total.String()).
		Str("request_id", RequestIDFromContext(r.Context())).
		Msg("order_created")
	writeJSON(w, http.StatusCreated, o)
}

func (a *App) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	o, err := a.Orders.Get(mux.Vars(r)["number"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	hits, misses, evictions := a.Cache.Stats()
	allowed, denied, callers := a.Limiter.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"products":          a.Store.Len(),
		"cache_entries":     a.Cache.Size(),
		"cache_hits":        hits,
		"cache_misses":      misses,
		"cache_evictions":   evictions,
		"ratelimit_allowed": allowed,
		"ratelimit_denied":  denied,
		"ratelimit_callers": callers,
		"cart_lines":        a.Cart.Len(),
		"orders":            a.Orders.Len(),
		"uptime_sec":        time.Since(a.started).Seconds(),
	})
}
