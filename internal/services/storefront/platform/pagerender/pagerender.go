// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/platform/flash"
	"github.com/burjmall/storefront/internal/services/storefront/platform/httpx"
	"github.com/burjmall/storefront/internal/services/storefront/platform/i18n"
	"github.com/burjmall/storefront/internal/services/storefront/templates"
)

const contentTypeHTML = "text/html; charset=utf-8"

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	// Category is the active category, preselected in the header search.
	Category string
	Fragment templ.Component
}

// WriteModulePage renders page.Fragment alone for HTMX requests and inside
// the storefront document otherwise. Full pages consume any pending flash
// notice.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := httpx.RequestContext(r)
	if httpx.IsHTMXFragmentRequest(r) {
		return WriteFragment(w, r, statusCode, fragment)
	}

	loc, tag := i18n.ForRequest(r)
	viewer := module.Viewer{}
	if deps.ResolveViewer != nil {
		viewer = deps.ResolveViewer(r)
	}
	view := templates.PageView{
		Title:    page.Title,
		Lang:     tag.String(),
		Loc:      loc,
		Header:   templates.HeaderView{SignedIn: viewer.SignedIn, FirstName: viewer.FirstName},
		Category: page.Category,
	}
	if notice, ok := flash.ReadAndClear(w, r, deps.SchemePolicy); ok {
		view.Notice = &templates.NoticeView{Kind: string(notice.Kind), Message: loc.Sprintf(notice.Key)}
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(statusCode)
	return templates.Document(view).Render(templ.WithChildren(ctx, fragment), w)
}

// WriteFragment writes component without the document shell.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if component == nil {
		component = templ.NopComponent
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(statusCode)
	return component.Render(httpx.RequestContext(r), w)
}
