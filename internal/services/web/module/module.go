// Package module defines the dependency and registration contracts shared by
// web modules.
package module

import (
	"net/http"
	"time"

	"github.com/louisbranch/carbonledger/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/carbonledger/internal/storage"
)

// Viewer describes the browser principal resolved from the session cookie.
type Viewer struct {
	UserID   int64
	Email    string
	UserType string
	// Pending marks a signup that has not chosen an identity yet. Pending
	// viewers may only access the identity chooser.
	Pending  bool
	SignedIn bool
}

// ResolveViewer extracts the viewer from a request. A zero Viewer means the
// request carries no valid session.
type ResolveViewer func(*http.Request) Viewer

// Dependencies carries shared capabilities injected into each module.
type Dependencies struct {
	Users         storage.UserStore
	Emissions     storage.EmissionStore
	Market        storage.MarketStore
	Sessions      *sessioncookie.Codec
	ResolveViewer ResolveViewer
	Now           func() time.Time
}

// Clock returns the injected clock, falling back to time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Module registers a feature surface on the shared mux.
type Module interface {
	ID() string
	Register(mux *http.ServeMux, deps Dependencies) error
}
