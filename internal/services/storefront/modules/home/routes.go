package home

import (
	"net/http"

	"github.com/burjmall/storefront/internal/services/storefront/platform/httpx"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Category, h.handleCategory)
	mux.Handle(routepath.Category, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
