package public

import (
	"net/http"

	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/weberror"
	"github.com/louisbranch/carbonledger/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) viewerNav(r *http.Request) templates.Nav {
	if h.deps.ResolveViewer == nil {
		return templates.Nav{}
	}
	viewer := h.deps.ResolveViewer(r)
	return templates.Nav{SignedIn: viewer.SignedIn && !viewer.Pending, Email: viewer.Email}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderIndex(w, templates.IndexView{Nav: h.viewerNav(r)}); err != nil {
		weberror.WriteError(w, r, err)
	}
}
