package dashboard

import (
	"net/http"

	"github.com/louisbranch/carbonledger/internal/services/web/platform/httpx"
	"github.com/louisbranch/carbonledger/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleDashboardGet)

	mux.HandleFunc(http.MethodGet+" "+routepath.AddEmission, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AddEmission, h.handleAddEmissionPost)
}
