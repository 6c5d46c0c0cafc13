package auth

import (
	"net/http"

	"github.com/louisbranch/carbonledger/internal/account"
	apperrors "github.com/louisbranch/carbonledger/internal/platform/errors"
	module "github.com/louisbranch/carbonledger/internal/services/web/module"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/httpx"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/carbonledger/internal/services/web/platform/weberror"
	"github.com/louisbranch/carbonledger/internal/services/web/routepath"
	"github.com/louisbranch/carbonledger/internal/services/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func (h handlers) viewer(r *http.Request) module.Viewer {
	if h.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return h.deps.ResolveViewer(r)
}

func (h handlers) writeSession(w http.ResponseWriter, r *http.Request, user account.User, pending bool) error {
	token, err := h.deps.Sessions.Encode(sessioncookie.Session{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Pending:  pending,
	})
	if err != nil {
		return err
	}
	sessioncookie.Write(w, r, token)
	return nil
}

func (h handlers) renderLogin(w http.ResponseWriter, status int, view templates.LoginView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.RenderLogin(w, view); err != nil {
		weberror.WriteError(w, nil, err)
	}
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	viewer := h.viewer(r)
	if viewer.SignedIn && !viewer.Pending {
		http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
		return
	}
	if viewer.Pending {
		http.Redirect(w, r, routepath.Identify, http.StatusFound)
		return
	}
	h.renderLogin(w, http.StatusOK, templates.LoginView{})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	user, err := h.service.signIn(httpx.RequestContext(r), email, r.FormValue("password"))
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			weberror.WriteError(w, r, err)
			return
		}
		h.renderLogin(w, status, templates.LoginView{ErrorMessage: err.Error(), Email: email})
		return
	}
	pending := user.UserType == string(account.UserTypePending)
	if err := h.writeSession(w, r, user, pending); err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	if pending {
		http.Redirect(w, r, routepath.Identify, http.StatusFound)
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

func (h handlers) handleSignupPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, http.StatusBadRequest)
		return
	}
	input := account.SignupInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
	}
	user, err := h.service.signUp(httpx.RequestContext(r), input)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			weberror.WriteError(w, r, err)
			return
		}
		h.renderLogin(w, status, templates.LoginView{ErrorMessage: err.Error(), Email: input.Email, Name: input.Name})
		return
	}
	if err := h.writeSession(w, r, user, true); err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.Identify, http.StatusFound)
}

func (h handlers) handleIdentifyGet(w http.ResponseWriter, r *http.Request) {
	viewer := h.viewer(r)
	if !viewer.SignedIn {
		http.Redirect(w, r, routepath.Login, http.StatusFound)
		return
	}
	if !viewer.Pending {
		http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderIdentify(w, templates.IdentifyView{}); err != nil {
		weberror.WriteError(w, r, err)
	}
}

func (h handlers) handleSetIdentityPost(w http.ResponseWriter, r *http.Request) {
	viewer := h.viewer(r)
	if !viewer.SignedIn || !viewer.Pending {
		http.Redirect(w, r, routepath.Login, http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatus(w, http.StatusBadRequest)
		return
	}
	user, err := h.service.chooseIdentity(httpx.RequestContext(r), viewer.UserID, r.FormValue("user_type"))
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			weberror.WriteError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if renderErr := templates.RenderIdentify(w, templates.IdentifyView{ErrorMessage: err.Error()}); renderErr != nil {
			weberror.WriteError(w, r, renderErr)
		}
		return
	}
	if err := h.writeSession(w, r, user, false); err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	http.Redirect(w, r, routepath.Home, http.StatusFound)
}
