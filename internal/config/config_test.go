package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CROSSPAY_AUTH_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.RateMax != 100 || cfg.RateWindow != 15*time.Minute {
		t.Errorf("rate limit = %d/%v", cfg.RateMax, cfg.RateWindow)
	}
	if len(cfg.Currencies) != 4 || cfg.Currencies[0] != "ZAR" {
		t.Errorf("Currencies = %v", cfg.Currencies)
	}
	if !cfg.SeedOperator {
		t.Error("SeedOperator should default to true")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("CROSSPAY_AUTH_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CROSSPAY_AUTH_SECRET", "test-secret")
	t.Setenv("CROSSPAY_ADDR", ":9090")
	t.Setenv("CROSSPAY_TOKEN_TTL", "1h")
	t.Setenv("CROSSPAY_CURRENCIES", "USD,EUR")
	t.Setenv("CROSSPAY_RATE_MAX", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.TokenTTL != time.Hour || cfg.RateMax != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Currencies) != 2 {
		t.Errorf("Currencies = %v", cfg.Currencies)
	}
}
