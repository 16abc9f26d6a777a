// Package main boots the Royal Liquor inventory HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsalanvarghese/Royal-liquor/internal/cache"
	"github.com/itsalanvarghese/Royal-liquor/internal/cart"
	"github.com/itsalanvarghese/Royal-liquor/internal/config"
	httpapi "github.com/itsalanvarghese/Royal-liquor/internal/http"
	"github.com/itsalanvarghese/Royal-liquor/internal/inventory"
	"github.com/itsalanvarghese/Royal-liquor/internal/obs"
	"github.com/itsalanvarghese/Royal-liquor/internal/order"
	"github.com/itsalanvarghese/Royal-liquor/internal/ratelimit"
	"github.com/itsalanvarghese/Royal-liquor/internal/store"
)

func main() {
	obs.InitLogger()
	cfg, err := config.Load()
	if err != nil {
		obs.Logger.Fatal().Err(err).Msg("config_load_failed")
	}
	obs.Logger.Info().Msg("service_starting")

	st := store.New()
	if cfg.SeedPath != "" {
		n, err := inventory.Seed(st, cfg.SeedPath)
		if err != nil {
			obs.Logger.Fatal().Err(err).Str("path", cfg.SeedPath).Msg("seed_failed")
		}
		obs.Logger.Info().Int("products", n).Str("path", cfg.SeedPath).Msg("inventory_seeded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := cache.New(st, cfg.CacheTTL)
	c.StartJanitor(ctx, cfg.CacheSweepInterval)

	lim := ratelimit.New(cfg.RateLimit, cfg.RateWindow, ratelimit.WithIdleTTL(cfg.RateIdleTTL))
	lim.StartJanitor(ctx, cfg.RateIdleTTL)

	app := httpapi.NewApp(cfg, st, c, cart.New(), order.NewBook(), lim)
	h := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info().Str("addr", cfg.HTTPAddr).Msg("http_listen")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Fatal().Err(err).Msg("http_server_error")
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info().Str("signal", s.String()).Msg("shutdown_signal")

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error().Err(err).Msg("http_shutdown_error")
	}
	obs.Logger.Info().Msg("service_stopped")
}
