package web

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("CARBONLEDGER_HTTP_ADDR", "")
	t.Setenv("CARBONLEDGER_DATA_DIR", "")
	t.Setenv("CARBONLEDGER_SESSION_KEY", "")
	t.Setenv("CARBONLEDGER_SESSION_TTL", "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.DataDir != "." || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("CARBONLEDGER_HTTP_ADDR", ":9999")
	t.Setenv("CARBONLEDGER_DATA_DIR", "/tmp/env-dir")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", ":7777", "-session-ttl", "1h"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":7777" {
		t.Fatalf("http addr = %q, want flag override", cfg.HTTPAddr)
	}
	if cfg.DataDir != "/tmp/env-dir" {
		t.Fatalf("data dir = %q, want env value", cfg.DataDir)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("session ttl = %v, want 1h", cfg.SessionTTL)
	}
}

func TestSessionKeyPrefersConfiguredValue(t *testing.T) {
	t.Parallel()

	key, err := sessionKey(Config{SessionKey: "configured"})
	if err != nil {
		t.Fatalf("session key: %v", err)
	}
	if string(key) != "configured" {
		t.Fatalf("key = %q, want configured value", key)
	}
}

func TestSessionKeyGeneratesEphemeralFallback(t *testing.T) {
	t.Parallel()

	first, err := sessionKey(Config{})
	if err != nil {
		t.Fatalf("session key: %v", err)
	}
	second, err := sessionKey(Config{})
	if err != nil {
		t.Fatalf("session key: %v", err)
	}
	if len(first) != 32 || len(second) != 32 {
		t.Fatalf("key lengths = %d, %d, want 32", len(first), len(second))
	}
	if string(first) == string(second) {
		t.Fatal("ephemeral keys must be random")
	}
}
