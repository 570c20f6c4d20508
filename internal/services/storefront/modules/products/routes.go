package products

import (
	"net/http"

	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Products, h.handleGrid)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductsPrefix+"{$}", h.handleGrid)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProductsMore, h.handleMore)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProducts, h.handleAPI)
	mux.HandleFunc(routepath.ProductsPrefix, h.handleNotFound)
}
