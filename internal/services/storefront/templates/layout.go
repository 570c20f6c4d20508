package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

const (
	siteName   = "BurjMall"
	htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

	// ModalTargetID is the element modal fragments are swapped into.
	ModalTargetID = "modal"
)

// HeaderView is the signed-in state shown in the header.
type HeaderView struct {
	SignedIn  bool
	FirstName string
}

// NoticeView is a toast rendered once.
type NoticeView struct {
	Kind    string
	Message string
}

// PageView carries document chrome for a full page.
type PageView struct {
	Title    string
	Lang     string
	Loc      Localizer
	Header   HeaderView
	Category string
	Notice   *NoticeView
}

// ComposePageTitle appends the site name to title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return siteName
	}
	if strings.HasSuffix(title, "| "+siteName) || title == siteName {
		return title
	}
	return title + " | " + siteName
}

// Document renders the full storefront document around its children.
func Document(page PageView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		child, ctx := children(ctx)
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		title := T(page.Loc, "site.title")
		if page.Title != "" {
			title = ComposePageTitle(page.Title)
		}

		h.raw("<!doctype html>")
		h.open("html", "lang", lang)
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", title)
		h.open("link", "rel", "stylesheet", "href", routepath.Static("app.css"))
		h.open("script", "src", htmxScript, "defer", "")
		h.close("script")
		h.open("script", "src", routepath.Static("app.js"), "defer", "")
		h.close("script")
		h.close("head")
		h.open("body", "class", "storefront")

		h.render(ctx, Toast(page.Notice))
		h.render(ctx, Header(page.Header, page.Category, page.Loc))
		h.open("main", "id", "main")
		h.render(ctx, child)
		h.close("main")
		h.render(ctx, Footer(page.Loc))
		h.open("div", "id", ModalTargetID)
		h.close("div")

		h.close("body")
		h.close("html")
	})
}

// Toast renders the one-shot notice region.
func Toast(notice *NoticeView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("div", "id", "toasts", "class", "toasts", "aria-live", "polite")
		if notice != nil && strings.TrimSpace(notice.Message) != "" {
			kind := notice.Kind
			if kind == "" {
				kind = "info"
			}
			h.open("div", "class", classes("toast", "toast-"+kind), "role", "status", "data-toast", "")
			h.element("span", notice.Message)
			h.close("div")
		}
		h.close("div")
	})
}

// Header renders the top bar, the search row and the orange navigation bar.
func Header(view HeaderView, category string, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("header", "class", "site-header")

		h.open("div", "class", "top-bar")
		h.element("span", T(loc, "site.welcome"), "class", "top-bar-welcome")
		h.open("nav", "class", "top-bar-links")
		if view.SignedIn {
			h.element("span", T(loc, "site.sign_in_prompt"))
		} else {
			h.element("a", T(loc, "site.sign_in_prompt"), "href", routepath.Login, "hx-get", routepath.Login, "hx-target", "#"+ModalTargetID)
		}
		h.element("a", T(loc, "site.track_order"), "href", "#")
		h.element("a", T(loc, "site.support"), "href", "#")
		h.element("span", T(loc, "site.language"), "class", "language")
		h.close("nav")
		h.close("div")

		h.open("div", "class", "header-main")
		h.open("a", "href", routepath.Root, "class", "logo")
		h.element("span", "Burj", "class", "logo-burj")
		h.element("span", "Mall", "class", "logo-mall")
		h.close("a")
		h.render(ctx, SearchBox(category, loc))
		h.open("div", "class", "header-actions")
		h.element("a", T(loc, "header.wishlist"), "href", "#", "class", "icon-link icon-heart")
		h.element("a", T(loc, "header.cart"), "href", "#", "class", "icon-link icon-cart")
		if view.SignedIn {
			h.element("span", T(loc, "header.greeting", view.FirstName), "class", "greeting")
			h.open("form", "method", "post", "action", routepath.Logout, "class", "inline-form")
			h.element("button", T(loc, "header.logout"), "type", "submit", "class", "link-button")
			h.close("form")
		} else {
			h.element("a", T(loc, "header.login"), "href", routepath.Login, "hx-get", routepath.Login, "hx-target", "#"+ModalTargetID, "class", "auth-link")
			h.element("a", T(loc, "header.register"), "href", routepath.Signup, "hx-get", routepath.Signup, "hx-target", "#"+ModalTargetID, "class", "auth-link")
		}
		h.close("div")
		h.close("div")

		h.render(ctx, NavBar(loc))
		h.close("header")
	})
}

// SearchBox renders the category scoped search row.
func SearchBox(category string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		active := catalog.NormalizeSlug(category)
		h.open("form", "class", "search-box", "method", "get", "action", routepath.Root, "role", "search")
		h.open("select", "name", routepath.QueryCategory, "aria-label", T(loc, "header.all_categories"))
		for _, option := range catalog.SearchCategories() {
			label := option.Label
			if option.Slug == catalog.AllCategories {
				label = T(loc, "header.all_categories")
			}
			if option.Slug == active {
				h.open("option", "value", option.Slug, "selected", "")
			} else {
				h.open("option", "value", option.Slug)
			}
			h.text(label)
			h.close("option")
		}
		h.close("select")
		h.open("input", "type", "search", "name", "q", "placeholder", T(loc, "header.search"), "aria-label", T(loc, "header.search"))
		h.element("button", T(loc, "header.search_button"), "type", "submit")
		h.close("form")
	})
}

// NavBar renders the orange bar with the CATEGORIES mega-menu.
func NavBar(loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("nav", "class", "nav-bar")
		h.open("div", "class", "mega-menu")
		h.element("button", T(loc, "nav.categories"), "type", "button", "class", "mega-menu-toggle", "aria-haspopup", "true")
		h.render(ctx, MegaMenu(catalog.MegaMenu(), loc))
		h.close("div")
		h.element("a", T(loc, "nav.brands"), "href", "#")
		h.element("a", T(loc, "nav.vendors"), "href", "#")
		h.element("a", T(loc, "nav.sell"), "href", "#")
		h.element("span", T(loc, "nav.free_shipping"), "class", "free-shipping")
		h.close("nav")
	})
}

// MegaMenu renders the category tree. Items with groups open a panel on hover.
func MegaMenu(items []catalog.MenuItem, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("ul", "class", "mega-menu-list")
		for _, item := range items {
			h.open("li", "class", classes("mega-menu-item", specialClass(item), panelClass(item)))
			h.open("a", "href", "#", "class", "icon-"+item.Icon)
			h.text(item.Name)
			if item.Special {
				h.element("span", T(loc, "nav.new_badge"), "class", "badge-new")
			}
			h.close("a")
			if item.HasPanel() {
				h.open("div", "class", "mega-menu-panel")
				for _, group := range item.Groups {
					h.open("div", "class", "mega-menu-group")
					h.element("h4", group.Title)
					h.open("ul")
					for _, entry := range group.Items {
						h.open("li")
						h.element("a", entry, "href", "#")
						h.close("li")
					}
					h.close("ul")
					h.close("div")
				}
				h.close("div")
			}
			h.close("li")
		}
		h.close("ul")
	})
}

func specialClass(item catalog.MenuItem) string {
	if item.Special {
		return "is-special"
	}
	return ""
}

func panelClass(item catalog.MenuItem) string {
	if item.HasPanel() {
		return "has-panel"
	}
	return ""
}

// Footer renders the site footer.
func Footer(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("footer", "class", "site-footer")
		h.open("div", "class", "footer-about")
		h.element("strong", siteName)
		h.element("p", T(loc, "footer.about"))
		h.close("div")
		h.open("div", "class", "footer-links")
		h.element("h4", T(loc, "footer.customer_care"))
		h.open("ul")
		for _, key := range []string{"footer.help", "footer.returns", "footer.contact"} {
			h.open("li")
			h.element("a", T(loc, key), "href", "#")
			h.close("li")
		}
		h.close("ul")
		h.close("div")
		h.element("p", T(loc, "footer.rights"), "class", "footer-rights")
		h.close("footer")
	})
}
