// Package account serves login, signup and logout.
package account

import (
	"net/http"

	module "github.com/burjmall/storefront/internal/services/storefront/module"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

// Module provides account routes.
type Module struct{}

// New returns an account module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Mount wires account handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{
		Paths:   []string{routepath.Login, routepath.Signup, routepath.Logout},
		Handler: mux,
	}, nil
}
