package httpapi

import (
	"expvar"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
// Mutating routes pass through the rate limiter.
func NewRouter(app *App) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/products", app.limited(app.createProductHandler)).Methods(http.MethodPost)
	r.HandleFunc("/products", app.listProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", app.getProductHandler).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", app.limited(app.updateProductHandler)).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", app.limited(app.deleteProductHandler)).Methods(http.MethodDelete)

	r.HandleFunc("/lookup/{barcode}", app.lookupHandler).Methods(http.MethodGet)

	r.HandleFunc("/cart", app.getCartHandler).Methods(http.MethodGet)
	r.HandleFunc("/cart/add", app.addToCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/update", app.updateCartHandler).Methods(http.MethodPut)
	r.HandleFunc("/cart/clear", app.clearCartHandler).Methods(http.MethodPost)

	r.HandleFunc("/orders", app.limited(app.createOrderHandler)).Methods(http.MethodPost)
	r.HandleFunc("/orders/{number}", app.getOrderHandler).Methods(http.MethodGet)

	r.HandleFunc("/healthz", app.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/debug/metrics", app.metricsHandler).Methods(http.MethodGet)
	r.Handle("/debug/vars", expvar.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", app.openapiHandler).Methods(http.MethodGet)
	r.HandleFunc("/docs", app.docsHandler).Methods(http.MethodGet)

	return WithRequestID(WithLogging(r))
}
