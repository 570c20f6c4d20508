package products

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/platform/logging"
	"github.com/burjmall/storefront/internal/services/storefront/catalog"
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
	deps module.Dependencies
	feed feedview.Service
}

func newHandlers(deps module.Dependencies, feed feedview.Service) handlers {
	return handlers{deps: deps, feed: feed}
}

// handleGrid reloads the catalog section from the first batch.
func (h handlers) handleGrid(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ForRequest(r)
	category := categorypref.Resolve(r)
	var view templates.GridView
	result, err := h.feed.First(r.Context(), category)
	if err != nil {
		h.logger(r).Warn("load catalog feed failed", zap.String("category", category), zap.Error(err))
		view = templates.GridView{Category: category, Error: weberror.PublicMessage(loc, err)}
	} else {
		view = result.GridView(loc.Sprintf("error.catalog_unavailable"))
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Category: category,
		Fragment: templates.CatalogSection(view, loc),
	}); err != nil {
		h.logger(r).Warn("render catalog section failed", zap.Error(err))
	}
}

// handleMore appends the next batch in place of the feed sentinel.
func (h handlers) handleMore(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ForRequest(r)
	query := r.URL.Query()
	category := catalog.NormalizeSlug(categorypref.Sanitize(query.Get(routepath.QueryCategory)))
	result, err := h.feed.Next(r.Context(), query.Get(routepath.QueryCursor), category)
	if err != nil {
		h.logger(r).Warn("load next catalog batch failed", zap.String("category", category), zap.Error(err))
		if !httpx.IsHTMXRequest(r) {
			weberror.WriteModuleError(w, r, err, h.deps)
			return
		}
		// HTMX ignores error statuses, so the failure is rendered as the feed tail.
		view := templates.GridView{Category: category, Error: weberror.PublicMessage(loc, err)}
		h.writeFragment(w, r, templates.FeedTail(view, loc))
		return
	}
	h.writeFragment(w, r, templates.MoreProducts(result.GridView(loc.Sprintf("error.catalog_unavailable")), loc))
}

// productsResponse is the JSON view of one feed batch.
type productsResponse struct {
	Category    string            `json:"category"`
	Products    []catalog.Product `json:"products"`
	Cursor      string            `json:"cursor,omitempty"`
	HasMore     bool              `json:"has_more"`
	Shown       int               `json:"shown"`
	Total       int               `json:"total"`
	Unavailable bool              `json:"unavailable,omitempty"`
}

// handleAPI serves the feed as JSON; pass the returned cursor back to page on.
func (h handlers) handleAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := catalog.NormalizeSlug(categorypref.Sanitize(query.Get(routepath.QueryCategory)))
	result, err := h.feed.Next(r.Context(), query.Get(routepath.QueryCursor), category)
	if err != nil {
		h.logger(r).Warn("load catalog api batch failed", zap.String("category", category), zap.Error(err))
		_ = httpx.WriteJSONError(w, err)
		return
	}
	resp := productsResponse{
		Category:    result.Category,
		Products:    result.Products,
		HasMore:     result.HasMore,
		Shown:       result.Cursor.Shown,
		Total:       result.Total,
		Unavailable: result.Unavailable,
	}
	if resp.Products == nil {
		resp.Products = []catalog.Product{}
	}
	if result.HasMore {
		resp.Cursor = result.Cursor.Encode()
	}
	if err := httpx.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger(r).Warn("write catalog api response failed", zap.Error(err))
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writeFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		h.logger(r).Warn("render catalog fragment failed", zap.Error(err))
	}
}

func (h handlers) logger(r *http.Request) *zap.Logger {
	return logging.FromContext(r.Context(), h.deps.Logger)
}
