// Package home serves the storefront landing page and category selection.
package home

import (
	"net/http"

	"github.com/burjmall/storefront/internal/services/storefront/feedview"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
	"github.com/burjmall/storefront/internal/services/storefront/templates"
)

// Module provides the landing page routes.
type Module struct {
	banners []string
}

// New returns a home module with the default hero banners.
func New() Module { return Module{banners: templates.DefaultBanners()} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires landing page handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps, feedview.New(deps.Feed, deps.Logger), m.banners)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
