package account

import (
	"errors"
	"net/http"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront/identity"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/platform/flash"
	"github.com/burjmall/storefront/internal/services/storefront/platform/httpx"
	"github.com/burjmall/storefront/internal/services/storefront/platform/i18n"
	"github.com/burjmall/storefront/internal/services/storefront/platform/pagerender"
	"github.com/burjmall/storefront/internal/services/storefront/platform/sessioncookie"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
	"github.com/burjmall/storefront/internal/services/storefront/templates"
	"go.uber.org/zap"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	h.renderForm(w, r, templates.AuthFormView{Mode: templates.AuthLogin}, http.StatusOK)
}

func (h handlers) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	h.renderForm(w, r, templates.AuthFormView{Mode: templates.AuthSignup}, http.StatusOK)
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	loc, _ := i18n.ForRequest(r)
	form := parseLoginForm(r)
	view := templates.AuthFormView{Mode: templates.AuthLogin, Email: form.Email}
	if key := validationKey(form); key != "" {
		view.Error = loc.Sprintf(key)
		h.renderForm(w, r, view, http.StatusUnprocessableEntity)
		return
	}
	if h.deps.Auth == nil {
		view.Error = loc.Sprintf("error.auth_unavailable")
		h.renderForm(w, r, view, http.StatusServiceUnavailable)
		return
	}

	result, err := h.deps.Auth.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		view.Error = h.authFailure(r, loc, "login", err)
		h.renderForm(w, r, view, http.StatusUnprocessableEntity)
		return
	}
	if !h.startSession(w, r, result) {
		view.Error = loc.Sprintf("error.auth_unavailable")
		h.renderForm(w, r, view, http.StatusServiceUnavailable)
		return
	}
	flash.Write(w, r, flash.Success("notice.logged_in"), h.deps.SchemePolicy)
	httpx.WriteRedirect(w, r, routepath.Root)
}

// handleSignup registers the shopper. A backend that returns a token signs
// the shopper in; otherwise they are sent to the login form.
func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	loc, _ := i18n.ForRequest(r)
	form := parseSignupForm(r)
	view := templates.AuthFormView{Mode: templates.AuthSignup, Name: form.Name, Email: form.Email}
	if key := validationKey(form); key != "" {
		view.Error = loc.Sprintf(key)
		h.renderForm(w, r, view, http.StatusUnprocessableEntity)
		return
	}
	if h.deps.Auth == nil {
		view.Error = loc.Sprintf("error.auth_unavailable")
		h.renderForm(w, r, view, http.StatusServiceUnavailable)
		return
	}

	result, err := h.deps.Auth.Signup(r.Context(), identity.SignupInput{
		Name:                 form.Name,
		Email:                form.Email,
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
	})
	if err != nil {
		view.Error = h.authFailure(r, loc, "signup", err)
		h.renderForm(w, r, view, http.StatusUnprocessableEntity)
		return
	}
	if result.Token != "" && h.startSession(w, r, result) {
		flash.Write(w, r, flash.Success("notice.signed_up"), h.deps.SchemePolicy)
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	flash.Write(w, r, flash.Success("notice.account_created"), h.deps.SchemePolicy)
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.deps.ResolveSession != nil {
		if sess, ok := h.deps.ResolveSession(r); ok && h.deps.Auth != nil {
			h.deps.Auth.Logout(ctx, sess.Token)
		}
	}
	if id, ok := sessioncookie.Read(r); ok && h.deps.Sessions != nil {
		if err := h.deps.Sessions.Destroy(ctx, id); err != nil {
			h.logger(r).Warn("destroy session failed", zap.Error(err))
		}
	}
	sessioncookie.Clear(w, r, h.deps.SchemePolicy)
	flash.Write(w, r, flash.Info("notice.logged_out"), h.deps.SchemePolicy)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) startSession(w http.ResponseWriter, r *http.Request, result identity.AuthResult) bool {
	if h.deps.Sessions == nil {
		return false
	}
	sess, err := h.deps.Sessions.Create(r.Context(), result.User, result.Token)
	if err != nil {
		h.logger(r).Error("create session failed", zap.Error(err))
		return false
	}
	sessioncookie.Write(w, r, sess.ID, sess.ExpiresAt, h.deps.SchemePolicy)
	return true
}

// authFailure returns the message shown for a failed backend call. Backend
// messages are shown as sent; transport failures get a generic notice.
func (h handlers) authFailure(r *http.Request, loc i18n.Localizer, operation string, err error) string {
	var backendErr *identity.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	h.logger(r).Warn("auth backend unavailable", zap.String("operation", operation), zap.Error(err))
	return loc.Sprintf("error.auth_unavailable")
}

func (h handlers) renderForm(w http.ResponseWriter, r *http.Request, view templates.AuthFormView, status int) {
	loc, _ := i18n.ForRequest(r)
	var err error
	if httpx.IsHTMXFragmentRequest(r) {
		// HTMX only swaps successful responses.
		err = pagerender.WriteFragment(w, r, http.StatusOK, templates.AuthModal(view, loc))
	} else {
		title := loc.Sprintf("auth.login_title")
		if view.Mode == templates.AuthSignup {
			title = loc.Sprintf("auth.signup_title")
		}
		err = pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
			Title:      title,
			StatusCode: status,
			Fragment:   templates.AuthPage(view, loc),
		})
	}
	if err != nil {
		h.logger(r).Warn("render auth form failed", zap.Error(err))
	}
}

func (h handlers) signedIn(r *http.Request) bool {
	if h.deps.ResolveViewer == nil {
		return false
	}
	return h.deps.ResolveViewer(r).SignedIn
}

func (h handlers) logger(r *http.Request) *zap.Logger {
	return logging.FromContext(r.Context(), h.deps.Logger)
}
