package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "DATABASE_FILE", "RATE_LIMIT_MAX"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.DatabaseFile != "cvn.sqlite" {
		t.Errorf("DatabaseFile = %q, want cvn.sqlite", cfg.DatabaseFile)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if cfg.TLSEnabled() {
		t.Error("TLSEnabled() = true, want false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("DATABASE_FILE", "/srv/cvn/cvn.sqlite")
	t.Setenv("RATE_LIMIT_MAX", "250")

	cfg := Load()

	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.IsDev() {
		t.Error("IsDev() = true, want false")
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.DatabaseFile != "/srv/cvn/cvn.sqlite" {
		t.Errorf("DatabaseFile = %q, want /srv/cvn/cvn.sqlite", cfg.DatabaseFile)
	}
	if cfg.RateLimitMax != 250 {
		t.Errorf("RateLimitMax = %d, want 250", cfg.RateLimitMax)
	}
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")

	if got := Load().RateLimitMax; got != 100 {
		t.Errorf("RateLimitMax = %d, want fallback 100", got)
	}
}
