package marketplace

import (
	"net/http"

	"github.com/louisbranch/carbonledger/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Marketplace, h.handleMarketplaceGet)
	mux.HandleFunc(http.MethodGet+" "+routepath.MarketplaceReference, h.handleReferenceGet)
}
