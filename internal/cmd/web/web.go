// Package web parses web command flags and launches the web runtime.
package web

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/carbonledger/internal/platform/cmd"
	webserver "github.com/louisbranch/carbonledger/internal/services/web"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/carbonledger/internal/storage/jsonfile"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr   string        `env:"CARBONLEDGER_HTTP_ADDR" envDefault:":8080"`
	DataDir    string        `env:"CARBONLEDGER_DATA_DIR" envDefault:"."`
	SessionKey string        `env:"CARBONLEDGER_SESSION_KEY"`
	SessionTTL time.Duration `env:"CARBONLEDGER_SESSION_TTL" envDefault:"24h"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "The directory holding the JSON data files")
	fs.StringVar(&cfg.SessionKey, "session-key", cfg.SessionKey, "The session signing key")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "The session lifetime")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// sessionKey returns the configured signing key, or a random per-process key
// when none is set. A random key invalidates sessions on restart, so it is
// only suitable for local runs.
func sessionKey(cfg Config) ([]byte, error) {
	if cfg.SessionKey != "" {
		return []byte(cfg.SessionKey), nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	log.Printf("CARBONLEDGER_SESSION_KEY is not set; using an ephemeral key, sessions will not survive restarts")
	return key, nil
}

// Run starts the web runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := jsonfile.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open data dir: %w", err)
		}
		key, err := sessionKey(cfg)
		if err != nil {
			return err
		}
		codec, err := sessioncookie.NewCodec(key, cfg.SessionTTL)
		if err != nil {
			return fmt.Errorf("build session codec: %w", err)
		}
		server, err := webserver.NewServer(ctx, webserver.Config{
			HTTPAddr: cfg.HTTPAddr,
			Store:    store,
			Sessions: codec,
		})
		if err != nil {
			return err
		}
		defer server.Close()
		log.Printf("serving http addr=%s data_dir=%s", cfg.HTTPAddr, cfg.DataDir)
		return server.ListenAndServe(ctx)
	})
}
