// Package dashboard serves the signed-in emissions dashboard and the
// emission logging form.
package dashboard

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/carbonledger/internal/services/web/module"
)

// Module serves the dashboard surface.
type Module struct{}

// New constructs the dashboard module.
func New() Module {
	return Module{}
}

// ID names the module for registration diagnostics.
func (Module) ID() string {
	return "dashboard"
}

// Register mounts the dashboard routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	if mux == nil {
		return errors.New("mux is required")
	}
	if deps.Emissions == nil {
		return errors.New("emission store is required")
	}
	h := handlers{
		service: service{emissions: deps.Emissions, now: deps.Clock()},
		deps:    deps,
	}
	registerRoutes(mux, h)
	return nil
}
