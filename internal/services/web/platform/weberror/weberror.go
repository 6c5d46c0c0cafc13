// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
	"github.com/louisbranch/carbonledger/internal/services/web/templates"
)

// WriteStatus renders the shared error page with the given status code.
func WriteStatus(w http.ResponseWriter, status int) {
	if w == nil {
		return
	}
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.RenderError(w, templates.NewErrorView(status)); err != nil {
		log.Printf("render error page status=%d: %v", status, err)
	}
}

// WriteError maps err onto an HTTP status and renders the shared error page.
// Server faults are logged with request coordinates so operators can follow
// up; client faults are not.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError && r != nil {
		log.Printf("request failed method=%s path=%s: %v", r.Method, r.URL.Path, err)
	}
	WriteStatus(w, status)
}
