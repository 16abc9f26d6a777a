package config

import (
	"os"
	"testing"
	"time"
)

var knobs = []string{
	"HTTP_ADDR", "SHUTDOWN_TIMEOUT",
	"CACHE_TTL", "CACHE_SWEEP_INTERVAL",
	"RATE_LIMIT", "RATE_WINDOW", "RATE_IDLE_TTL", "RATE_KEY_HEADER",
	"SEED_PATH",
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range knobs {
		// t.Setenv registers the restore; envconfig needs the key truly absent
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.CacheTTL != time.Hour || c.CacheSweepInterval != 2*time.Minute {
		t.Fatalf("cache defaults")
	}
	if c.RateLimit != 100 || c.RateWindow != time.Minute || c.RateIdleTTL != 15*time.Minute {
		t.Fatalf("rate limit defaults")
	}
	if c.RateKeyHeader != "X-Api-Key" {
		t.Fatalf("key header default")
	}
	if c.SeedPath != "" {
		t.Fatalf("seed path default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CACHE_SWEEP_INTERVAL", "5s")
	t.Setenv("RATE_LIMIT", "7")
	t.Setenv("RATE_WINDOW", "10s")
	t.Setenv("RATE_IDLE_TTL", "1m")
	t.Setenv("RATE_KEY_HEADER", "X-Caller")
	t.Setenv("SEED_PATH", "/tmp/inv.csv")
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.CacheTTL != 30*time.Second || c.CacheSweepInterval != 5*time.Second {
		t.Fatalf("cache env")
	}
	if c.RateLimit != 7 || c.RateWindow != 10*time.Second || c.RateIdleTTL != time.Minute {
		t.Fatalf("rate limit env")
	}
	if c.RateKeyHeader != "X-Caller" {
		t.Fatalf("key header env")
	}
	if c.SeedPath != "/tmp/inv.csv" {
		t.Fatalf("seed path env")
	}
}
