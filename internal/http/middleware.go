package httpapi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itsalanvarghese/Royal-liquor/internal/obs"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
)

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

type statusRecorder struct {
	h  http.ResponseWriter
	st int
	n  int
}

func (w *statusRecorder) Header() http.Header { return w.h.Header() }
func (w *statusRecorder) WriteHeader(code int) {
	w.st = code
	w.h.WriteHeader(code)
}
func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.h.Write(b)
	w.n += n
	return n, err
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{h: w, st: 200}
		next.ServeHTTP(sr, r)
		obs.Logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sr.st).
			Int("bytes", sr.n).
			Dur("latency", time.Since(start)).
			Str("request_id", RequestIDFromContext(r.Context())).
			Msg("http_request")
	})
}

// callerKey identifies the caller for rate limiting: the configured API key
// header when present, the client IP otherwise.
func (a *App) callerKey(r *http.Request) string {
	if a.Cfg.RateKeyHeader != "" {
		if v := strings.TrimSpace(r.Header.Get(a.Cfg.RateKeyHeader)); v != "" {
			return v
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// limited wraps mutating handlers with the per-caller rate limiter.
func (a *App) limited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := a.Limiter.Allow(a.callerKey(r))
		if !ok {
			secs := int(retryAfter.Seconds())
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			WriteJSONError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, slow down")
			return
		}
		next(w, r)
	}
}
