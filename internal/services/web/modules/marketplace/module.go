// Package marketplace serves the emissions leaderboards. The default board
// ranks logged emissions; a second board ranks the reference
// decarbonisation dataset.
package marketplace

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/carbonledger/internal/services/web/module"
)

// Module serves the marketplace surface.
type Module struct{}

// New constructs the marketplace module.
func New() Module {
	return Module{}
}

// ID names the module for registration diagnostics.
func (Module) ID() string {
	return "marketplace"
}

// Register mounts the marketplace routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	if mux == nil {
		return errors.New("mux is required")
	}
	if deps.Users == nil || deps.Emissions == nil || deps.Market == nil {
		return errors.New("user, emission, and market stores are required")
	}
	h := handlers{
		service: service{users: deps.Users, emissions: deps.Emissions, market: deps.Market},
		deps:    deps,
	}
	registerRoutes(mux, h)
	return nil
}
