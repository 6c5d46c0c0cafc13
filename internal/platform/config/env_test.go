package config

import (
	"testing"
	"time"
)

type testConfig struct {
	Addr string        `env:"CARBONLEDGER_TEST_ADDR" envDefault:":8080"`
	TTL  time.Duration `env:"CARBONLEDGER_TEST_TTL" envDefault:"24h"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want default :8080", cfg.Addr)
	}
	if cfg.TTL != 24*time.Hour {
		t.Fatalf("ttl = %v, want default 24h", cfg.TTL)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CARBONLEDGER_TEST_ADDR", "127.0.0.1:9000")
	t.Setenv("CARBONLEDGER_TEST_TTL", "1h")
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr = %q, want env override", cfg.Addr)
	}
	if cfg.TTL != time.Hour {
		t.Fatalf("ttl = %v, want 1h", cfg.TTL)
	}
}
