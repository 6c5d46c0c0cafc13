// Package public serves the unauthenticated landing page.
package public

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/carbonledger/internal/services/web/module"
)

// Module serves the public surface.
type Module struct{}

// New constructs the public module.
func New() Module {
	return Module{}
}

// ID names the module for registration diagnostics.
func (Module) ID() string {
	return "public"
}

// Register mounts the public routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	if mux == nil {
		return errors.New("mux is required")
	}
	registerRoutes(mux, handlers{deps: deps})
	return nil
}
