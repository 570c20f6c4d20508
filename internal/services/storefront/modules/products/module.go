// Package products serves product grid fragments and the JSON feed.
package products

import (
	"net/http"

	"github.com/burjmall/storefront/internal/services/storefront/feedview"
	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

// Module provides product feed routes.
type Module struct{}

// New returns a products module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "products" }

// Mount wires product feed handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps, feedview.New(deps.Feed, deps.Logger))
	registerRoutes(mux, h)
	return module.Mount{
		Prefix:  routepath.ProductsPrefix,
		Paths:   []string{routepath.APIProducts},
		Handler: mux,
	}, nil
}
