// Package web hosts the browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/carbonledger/internal/platform/timeouts"
	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/services/web/modules"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/httpx"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/carbonledger/internal/storage"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Store    storage.Store
	Sessions *sessioncookie.Codec
	Now      func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session codec is required")
	}
	deps := module.Dependencies{
		Users:         cfg.Store,
		Emissions:     cfg.Store,
		Market:        cfg.Store,
		Sessions:      cfg.Sessions,
		ResolveViewer: resolveViewer(cfg.Sessions),
		Now:           cfg.Now,
	}
	mux := http.NewServeMux()
	for _, m := range modules.Default() {
		if err := m.Register(mux, deps); err != nil {
			return nil, fmt.Errorf("register %s module: %w", m.ID(), err)
		}
	}
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(log.Default()),
	), nil
}

func resolveViewer(codec *sessioncookie.Codec) module.ResolveViewer {
	return func(r *http.Request) module.Viewer {
		token, ok := sessioncookie.Read(r)
		if !ok {
			return module.Viewer{}
		}
		session, err := codec.Decode(token)
		if err != nil {
			return module.Viewer{}
		}
		return module.Viewer{
			UserID:   session.UserID,
			Email:    session.Email,
			UserType: session.UserType,
			Pending:  session.Pending,
			SignedIn: true,
		}
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
