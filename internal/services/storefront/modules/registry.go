package modules

import (
	"github.com/burjmall/storefront/internal/services/storefront/modules/account"
	"github.com/burjmall/storefront/internal/services/storefront/modules/home"
	"github.com/burjmall/storefront/internal/services/storefront/modules/products"
)

// DefaultModules returns the storefront modules in mount order.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		products.New(),
		account.New(),
	}
}
