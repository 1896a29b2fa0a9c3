package config

import (
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("API_ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("API_KEYS", "key_a, key_b,")
	t.Setenv("PUBLIC_RPM", "111")
	t.Setenv("PUBLIC_BURST", "22")
	t.Setenv("MAX_TIMEOUT_S", "30")

	cfg := FromEnv()

	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if len(cfg.APIKeys) != 2 || cfg.APIKeys[0] != "key_a" || cfg.APIKeys[1] != "key_b" {
		t.Fatalf("api keys wrong: %+v", cfg.APIKeys)
	}
	if cfg.PublicRPM != 111 || cfg.PublicBurst != 22 {
		t.Fatalf("rate limits wrong: %+v", cfg)
	}
	if cfg.MaxTimeout != 30*time.Second {
		t.Fatalf("max timeout wrong: %v", cfg.MaxTimeout)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("API_ADDR", "")
	t.Setenv("LOG_DIR", "")
	t.Setenv("API_KEYS", "")
	t.Setenv("PUBLIC_RPM", "")
	t.Setenv("PUBLIC_BURST", "")
	t.Setenv("MAX_TIMEOUT_S", "")

	cfg := FromEnv()
	if cfg.Addr != "127.0.0.1:8080" {
		t.Fatalf("default addr wrong: %q", cfg.Addr)
	}
	if cfg.LogDir != "logs" {
		t.Fatalf("default log dir wrong: %q", cfg.LogDir)
	}
	if len(cfg.APIKeys) != 0 {
		t.Fatalf("expected no keys, got %+v", cfg.APIKeys)
	}
	if cfg.MaxTimeout != 60*time.Second {
		t.Fatalf("default max timeout wrong: %v", cfg.MaxTimeout)
	}
}
