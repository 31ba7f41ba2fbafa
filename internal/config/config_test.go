package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	if cfg.DBUrl == "" {
		t.Fatal("expected a default DATABASE_URL")
	}
	if cfg.RedisURL != "" {
		t.Fatalf("expected cache disabled by default, got %q", cfg.RedisURL)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr() = %q, want :8080", cfg.Addr())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("Addr() = %q, want :9090", cfg.Addr())
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("RedisURL = %q", cfg.RedisURL)
	}
}
