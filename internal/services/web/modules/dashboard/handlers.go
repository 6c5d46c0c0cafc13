package dashboard

import (
	"net/http"

	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/httpx"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/weberror"
	"github.com/louisbranch/carbonledger/internal/services/web/routepath"
	"github.com/louisbranch/carbonledger/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

// requireViewer resolves a signed-in, identified viewer or redirects to the
// appropriate step.
func (h handlers) requireViewer(w http.ResponseWriter, r *http.Request) (module.Viewer, bool) {
	viewer := module.Viewer{}
	if h.deps.ResolveViewer != nil {
		viewer = h.deps.ResolveViewer(r)
	}
	if !viewer.SignedIn {
		http.Redirect(w, r, routepath.Login, http.StatusFound)
		return module.Viewer{}, false
	}
	if viewer.Pending {
		http.Redirect(w, r, routepath.Identify, http.StatusFound)
		return module.Viewer{}, false
	}
	return viewer, true
}

func (h handlers) renderDashboard(w http.ResponseWriter, r *http.Request, status int, viewer module.Viewer, errorMessage string) {
	totals, err := h.service.totalsFor(httpx.RequestContext(r), viewer.UserID)
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	nav := templates.Nav{SignedIn: true, Email: viewer.Email}
	view := templates.NewDashboardView(nav, viewer.Email, totals)
	view.ErrorMessage = errorMessage
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.RenderDashboard(w, view); err != nil {
		weberror.WriteError(w, r, err)
	}
}

func (h handlers) handleDashboardGet(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.requireViewer(w, r)
	if !ok {
		return
	}
	h.renderDashboard(w, r, http.StatusOK, viewer, "")
}

func (h handlers) handleAddEmissionPost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.requireViewer(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, http.StatusBadRequest)
		return
	}
	err := h.service.logEmission(
		httpx.RequestContext(r),
		viewer.UserID,
		r.FormValue("type"),
		r.FormValue("amount"),
		r.FormValue("unit"),
	)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			weberror.WriteError(w, r, err)
			return
		}
		h.renderDashboard(w, r, status, viewer, err.Error())
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}
