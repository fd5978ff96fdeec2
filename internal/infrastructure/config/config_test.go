package config

import (
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AppPort != "8080" || cfg.StoreBackend != BackendMemory || cfg.KVTable != "fieldops_kv" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.RateLimitPerSecond != 20 {
			t.Fatalf("unexpected rate limit: %v", cfg.RateLimitPerSecond)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", " Redis ")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("SEED_VISITS", "40")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		t.Setenv("ENV", "production")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StoreBackend != BackendRedis || cfg.RedisDB != 3 || cfg.SeedVisits != 40 || !cfg.PaymentGatewayMock {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if !cfg.IsProduction() {
			t.Fatalf("expected production")
		}
	})
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowedOrigins: "http://a.test, http://b.test,,"}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins: %v", got)
	}
	if got := (Config{}).AllowedOrigins(); !reflect.DeepEqual(got, []string{"*"}) {
		t.Fatalf("unexpected fallback: %v", got)
	}
}
