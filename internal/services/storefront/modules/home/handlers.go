package home

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront/feedview"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/platform/categorypref"
	"github.com/burjmall/storefront/internal/services/storefront/platform/httpx"
	"github.com/burjmall/storefront/internal/services/storefront/platform/i18n"
	"github.com/burjmall/storefront/internal/services/storefront/platform/pagerender"
	"github.com/burjmall/storefront/internal/services/storefront/platform/weberror"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
	"github.com/burjmall/storefront/internal/services/storefront/templates"
	"go.uber.org/zap"
)

type handlers struct {
	deps    module.Dependencies
	feed    feedview.Service
	banners []string
}

func newHandlers(deps module.Dependencies, feed feedview.Service, banners []string) handlers {
	return handlers{deps: deps, feed: feed, banners: banners}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ForRequest(r)
	category := categorypref.Resolve(r)
	banner, _ := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(routepath.QueryBanner)))

	view := templates.HomeView{
		Carousel: templates.NewCarousel(h.banners, banner),
		Grid:     h.firstBatch(r, category, loc),
	}
	h.render(w, r, pagerender.ModulePage{
		Category: category,
		Fragment: templates.HomePage(view, loc),
	})
}

// handleCategory stores the chosen category. HTMX swaps the catalog
// section in place; plain form posts are redirected back home.
func (h handlers) handleCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	category := categorypref.Write(w, r, r.PostForm.Get(routepath.QueryCategory), h.deps.SchemePolicy)
	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
		return
	}
	loc, _ := i18n.ForRequest(r)
	if err := pagerender.WriteFragment(w, r, http.StatusOK, templates.CatalogSection(h.firstBatch(r, category, loc), loc)); err != nil {
		logging.FromContext(r.Context(), h.deps.Logger).Warn("render catalog section failed", zap.Error(err))
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) firstBatch(r *http.Request, category string, loc i18n.Localizer) templates.GridView {
	unavailable := loc.Sprintf("error.catalog_unavailable")
	result, err := h.feed.First(r.Context(), category)
	if err != nil {
		logging.FromContext(r.Context(), h.deps.Logger).Warn("load catalog feed failed", zap.String("category", category), zap.Error(err))
		return templates.GridView{Category: category, Error: weberror.PublicMessage(loc, err)}
	}
	return result.GridView(unavailable)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		logging.FromContext(r.Context(), h.deps.Logger).Warn("render page failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
