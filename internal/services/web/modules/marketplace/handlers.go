package marketplace

import (
	"net/http"

	"github.com/louisbranch/carbonledger/internal/leaderboard"
	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/httpx"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/weberror"
	"github.com/louisbranch/carbonledger/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func (h handlers) viewerNav(r *http.Request) templates.Nav {
	if h.deps.ResolveViewer == nil {
		return templates.Nav{}
	}
	viewer := h.deps.ResolveViewer(r)
	return templates.Nav{SignedIn: viewer.SignedIn && !viewer.Pending, Email: viewer.Email}
}

func (h handlers) renderBoards(w http.ResponseWriter, r *http.Request, title string, hospitals, manufacturers []leaderboard.Entry) {
	view := templates.MarketplaceView{
		Nav:           h.viewerNav(r),
		Title:         title,
		Hospitals:     templates.NewBoardRows(hospitals),
		Manufacturers: templates.NewBoardRows(manufacturers),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderMarketplace(w, view); err != nil {
		weberror.WriteError(w, r, err)
	}
}

func (h handlers) handleMarketplaceGet(w http.ResponseWriter, r *http.Request) {
	hospitals, manufacturers, err := h.service.loggedBoards(httpx.RequestContext(r))
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	h.renderBoards(w, r, "Marketplace", hospitals, manufacturers)
}

func (h handlers) handleReferenceGet(w http.ResponseWriter, r *http.Request) {
	hospitals, manufacturers, err := h.service.referenceBoards(httpx.RequestContext(r))
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	h.renderBoards(w, r, "Reference dataset", hospitals, manufacturers)
}
