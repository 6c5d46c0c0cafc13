// Package auth serves signup, login, identity selection, and logout.
package auth

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/carbonledger/internal/services/web/module"
)

// Module serves the authentication surface.
type Module struct{}

// New constructs the auth module.
func New() Module {
	return Module{}
}

// ID names the module for registration diagnostics.
func (Module) ID() string {
	return "auth"
}

// Register mounts the auth routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	if mux == nil {
		return errors.New("mux is required")
	}
	if deps.Users == nil {
		return errors.New("user store is required")
	}
	if deps.Sessions == nil {
		return errors.New("session codec is required")
	}
	h := handlers{
		service: service{users: deps.Users, now: deps.Clock()},
		deps:    deps,
	}
	registerRoutes(mux, h)
	return nil
}
