package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

// AuthMode selects the login or signup form.
type AuthMode string

const (
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

// AuthFormView is the state of a login or signup form. Passwords are never
// echoed back.
type AuthFormView struct {
	Mode  AuthMode
	Name  string
	Email string
	// Error may hold several lines, one per backend message.
	Error string
}

func (v AuthFormView) action() string {
	if v.Mode == AuthSignup {
		return routepath.Signup
	}
	return routepath.Login
}

// AuthModal renders the form inside a closable overlay, for swapping into
// the modal target.
func AuthModal(view AuthFormView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "class", "modal-overlay", "data-modal", "")
		h.open("div", "class", "modal", "role", "dialog", "aria-modal", "true", "aria-labelledby", "auth-title")
		h.element("button", "×", "type", "button", "class", "modal-close", "aria-label", T(loc, "auth.close"), "data-modal-close", "")
		h.render(ctx, AuthForm(view, loc))
		h.close("div")
		h.close("div")
	})
}

// AuthPage renders the form as page content for requests without HTMX.
func AuthPage(view AuthFormView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("section", "class", "auth-page")
		h.render(ctx, AuthForm(view, loc))
		h.close("section")
	})
}

// AuthForm renders the login or signup form. On submit HTMX replaces the
// modal content, so server-side errors land in the same dialog.
func AuthForm(view AuthFormView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		signup := view.Mode == AuthSignup
		title := T(loc, "auth.login_title")
		if signup {
			title = T(loc, "auth.signup_title")
		}

		h.open("div", "class", "auth-card")
		h.element("h2", title, "id", "auth-title")
		h.render(ctx, authError(view.Error))

		h.open("form", "method", "post", "action", view.action(), "class", "auth-form", "novalidate", "",
			"hx-post", view.action(),
			"hx-target", "#"+ModalTargetID,
			"hx-disabled-elt", "find button[type=submit]",
		)
		if signup {
			h.render(ctx, authField("name", "text", T(loc, "auth.name"), view.Name, "name"))
		}
		h.render(ctx, authField("email", "email", T(loc, "auth.email"), view.Email, "email"))
		if signup {
			h.render(ctx, authField("password", "password", T(loc, "auth.password"), "", "new-password"))
			h.render(ctx, authField("password_confirmation", "password", T(loc, "auth.password_confirmation"), "", "new-password"))
		} else {
			h.render(ctx, authField("password", "password", T(loc, "auth.password"), "", "current-password"))
		}

		idle, busy := T(loc, "auth.sign_in"), T(loc, "auth.signing_in")
		if signup {
			idle, busy = T(loc, "auth.create"), T(loc, "auth.creating")
		}
		h.open("button", "type", "submit", "class", "button button-primary")
		h.element("span", idle, "class", "label-idle")
		h.element("span", busy, "class", "label-busy")
		h.close("button")
		h.close("form")

		h.open("p", "class", "auth-switch")
		if signup {
			h.text(T(loc, "auth.have_account") + " ")
			h.element("a", T(loc, "auth.sign_in_link"), "href", routepath.Login, "hx-get", routepath.Login, "hx-target", "#"+ModalTargetID)
		} else {
			h.text(T(loc, "auth.no_account") + " ")
			h.element("a", T(loc, "auth.create_one"), "href", routepath.Signup, "hx-get", routepath.Signup, "hx-target", "#"+ModalTargetID)
		}
		h.close("p")
		h.close("div")
	})
}

func authField(name, inputType, label, value, autocomplete string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		id := "auth-" + strings.ReplaceAll(name, "_", "-")
		h.open("div", "class", "form-field")
		h.element("label", label, "for", id)
		attrs := []string{"id", id, "name", name, "type", inputType, "autocomplete", autocomplete, "required", ""}
		if value != "" {
			attrs = append(attrs, "value", value)
		}
		h.open("input", attrs...)
		h.close("div")
	})
}

func authError(message string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		message = strings.TrimSpace(message)
		if message == "" {
			return
		}
		h.open("div", "class", "form-error", "role", "alert")
		for _, line := range strings.Split(message, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				h.element("p", line)
			}
		}
		h.close("div")
	})
}
