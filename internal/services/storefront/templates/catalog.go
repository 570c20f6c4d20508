package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

const (
	// CatalogSectionID wraps the category nav and the product grid.
	CatalogSectionID = "catalog"
	// CategoryCountID is updated out of band as batches arrive.
	CategoryCountID = "category-count"

	feedSentinelID = "feed-sentinel"
)

// GridView is one render of the product grid.
type GridView struct {
	// Category is the normalized active category slug.
	Category string
	// Products are the visible products of this batch.
	Products []catalog.Product
	// Shown counts visible products so far, this batch included.
	Shown int
	// Total is the sum of the totals reported by the catalog sources.
	Total   int
	HasMore bool
	// NextURL loads the next batch when HasMore is set.
	NextURL string
	// Error replaces the grid with an error state when set.
	Error string
}

func (v GridView) filtered() bool {
	return catalog.NormalizeSlug(v.Category) != catalog.AllCategories
}

// CatalogSection renders the category nav, the category summary and the grid.
func CatalogSection(view GridView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("section", "id", CatalogSectionID, "class", "catalog")
		h.render(ctx, CategoryNav(view.Category, loc))
		h.render(ctx, CategoryInfo(view, loc))
		h.render(ctx, Grid(view, loc))
		h.close("section")
	})
}

// CategoryNav renders the category filter buttons. Each one posts the slug so
// the choice persists; HTMX swaps the catalog section in place.
func CategoryNav(active string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		active = catalog.NormalizeSlug(active)
		h.open("nav", "class", "category-nav", "aria-label", T(loc, "category.nav_label"))
		for _, item := range catalog.NavCategories() {
			label := item.Label
			if item.Slug == catalog.AllCategories {
				label = T(loc, "category.all")
			}
			h.open("form", "method", "post", "action", routepath.Category,
				"hx-post", routepath.Category,
				"hx-target", "#"+CatalogSectionID,
				"hx-swap", "outerHTML",
				"hx-push-url", routepath.Home(item.Slug),
			)
			h.open("input", "type", "hidden", "name", routepath.QueryCategory, "value", item.Slug)
			if item.Slug == active {
				h.element("button", label, "type", "submit", "class", "category-button is-active", "aria-current", "true")
			} else {
				h.element("button", label, "type", "submit", "class", "category-button")
			}
			h.close("form")
		}
		h.close("nav")
	})
}

// CategoryInfo renders the headline and product count of a filtered view.
func CategoryInfo(view GridView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		if !view.filtered() || view.Error != "" {
			return
		}
		h.open("div", "class", "category-info")
		h.element("h2", catalog.CategoryHeadline(view.Category))
		h.open("p")
		h.render(ctx, categoryCount(view.Shown, false, loc))
		h.close("p")
		h.close("div")
	})
}

func categoryCount(shown int, oob bool, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if oob {
			h.element("span", T(loc, "grid.category_count", shown), "id", CategoryCountID, "hx-swap-oob", "true")
			return
		}
		h.element("span", T(loc, "grid.category_count", shown), "id", CategoryCountID)
	})
}

// Grid renders the product grid in its error, empty or list state.
func Grid(view GridView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "id", "product-grid", "class", "product-grid-wrap")
		h.open("div", "id", "grid-loading", "class", "htmx-indicator grid-loading")
		h.element("p", T(loc, "grid.loading"))
		h.close("div")

		switch {
		case view.Error != "":
			h.render(ctx, gridError(view, loc))
		case len(view.Products) == 0 && !view.HasMore:
			h.render(ctx, emptyState(view, loc))
		default:
			h.open("div", "id", "product-list", "class", "product-grid")
			for _, product := range view.Products {
				h.render(ctx, ProductCard(product, loc))
			}
			h.render(ctx, FeedTail(view, loc))
			h.close("div")
		}
		h.close("div")
	})
}

// MoreProducts renders a follow-up batch: cards, then a new sentinel or the
// end of the list. The category count is refreshed out of band.
func MoreProducts(view GridView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, product := range view.Products {
			h.render(ctx, ProductCard(product, loc))
		}
		h.render(ctx, FeedTail(view, loc))
		if view.filtered() {
			h.render(ctx, categoryCount(view.Shown, true, loc))
		}
	})
}

// FeedTail renders what follows the cards: a sentinel that loads the next
// batch when revealed, the end-of-list notice, or the empty state when the
// feed ended without a visible product. A failed batch gets a manual retry
// instead of a sentinel so a broken source is not polled in a loop.
func FeedTail(view GridView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		switch {
		case view.HasMore && view.NextURL != "" && view.Error != "":
			h.open("div", "id", feedSentinelID, "class", "feed-sentinel feed-retry grid-row", "role", "alert")
			h.element("p", view.Error)
			h.element("button", T(loc, "grid.try_again"), "type", "button", "class", "button",
				"hx-get", view.NextURL,
				"hx-target", "#"+feedSentinelID,
				"hx-swap", "outerHTML",
			)
			h.close("div")
		case view.Error != "":
			h.open("div", "class", "feed-end grid-row", "role", "alert")
			h.element("p", view.Error)
			h.element("a", T(loc, "grid.try_again"), "href", routepath.Home(view.Category), "class", "button")
			h.close("div")
		case view.HasMore && view.NextURL != "":
			h.open("div", "id", feedSentinelID, "class", "feed-sentinel grid-row",
				"hx-get", view.NextURL,
				"hx-trigger", "revealed",
				"hx-swap", "outerHTML",
			)
			h.element("p", T(loc, "grid.loading_more"), "class", "loading-more")
			h.close("div")
		case view.Shown > 0:
			h.open("div", "class", "feed-end grid-row")
			h.element("p", T(loc, "grid.end"))
			h.element("p", T(loc, "grid.end_count", view.Shown, view.Total), "class", "feed-end-count")
			h.close("div")
		default:
			h.open("div", "class", "grid-row")
			h.render(ctx, emptyState(view, loc))
			h.close("div")
		}
	})
}

func emptyState(view GridView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("div", "class", "grid-empty")
		if view.filtered() {
			h.element("h3", T(loc, "grid.empty_in", catalog.CategoryLabel(view.Category)))
		} else {
			h.element("h3", T(loc, "grid.empty"))
		}
		h.element("p", T(loc, "grid.empty_hint"))
		h.close("div")
	})
}

func gridError(view GridView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("div", "class", "grid-error", "role", "alert")
		h.element("h3", T(loc, "grid.error_title"))
		h.element("p", view.Error)
		h.element("a", T(loc, "grid.try_again"),
			"href", routepath.Home(view.Category),
			"class", "button",
			"hx-get", routepath.ProductGrid(view.Category),
			"hx-target", "#"+CatalogSectionID,
			"hx-swap", "outerHTML",
			"hx-indicator", "#grid-loading",
		)
		h.close("div")
	})
}

// ProductCard renders one product tile.
func ProductCard(p catalog.Product, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("article", "class", "product-card", "data-product", p.Key())
		h.open("div", "class", "product-image")
		if image := p.PrimaryImageURL(); image != "" {
			h.open("img", "src", image, "alt", p.Name, "loading", "lazy")
		} else {
			h.element("div", T(loc, "card.no_image"), "class", "no-image")
		}
		h.close("div")
		h.open("div", "class", "product-info")
		h.element("h3", p.Name, "class", "product-name")
		h.open("div", "class", "product-meta")
		h.open("div")
		h.element("div", p.DisplayPrice(), "class", "product-price")
		h.element("div", p.Category.Name, "class", "product-category")
		h.close("div")
		h.element("button", "+", "type", "button", "class", "add-to-cart", "aria-label", T(loc, "card.add_to_cart", p.Name))
		h.close("div")
		h.close("div")
		h.close("article")
	})
}
