package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

// ErrorView describes a failed page render.
type ErrorView struct {
	Title   string
	Message string
}

// ErrorState renders an error message with a link back to the catalog.
func ErrorState(view ErrorView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		title := view.Title
		if title == "" {
			title = T(loc, "error.page_title")
		}
		h.open("section", "class", "error-state", "role", "alert")
		h.element("h1", title)
		if view.Message != "" {
			h.element("p", view.Message)
		}
		h.element("a", T(loc, "error.back_home"), "href", routepath.Root, "class", "button")
		h.close("section")
	})
}

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(status int, loc Localizer) string {
	if status == http.StatusNotFound {
		return T(loc, "error.not_found_title")
	}
	return T(loc, "error.page_title")
}
