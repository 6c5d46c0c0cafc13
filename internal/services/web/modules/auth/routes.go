package auth

import (
	"net/http"

	"github.com/louisbranch/carbonledger/internal/services/web/platform/httpx"
	"github.com/louisbranch/carbonledger/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLoginPost)

	mux.HandleFunc(http.MethodGet+" "+routepath.Signup, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Signup, h.handleSignupPost)

	mux.HandleFunc(http.MethodGet+" "+routepath.Identify, h.handleIdentifyGet)

	mux.HandleFunc(http.MethodGet+" "+routepath.SetIdentity, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.SetIdentity, h.handleSetIdentityPost)

	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, h.handleLogout)
}
