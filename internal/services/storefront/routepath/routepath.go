// Package routepath stores canonical HTTP paths for storefront modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root           = "/"
	Products       = "/products"
	ProductsPrefix = "/products/"
	ProductsMore   = "/products/more"
	APIProducts    = "/api/products"
	Category       = "/category"
	Login          = "/login"
	Signup         = "/signup"
	Logout         = "/logout"
	Health         = "/up"
	Metrics        = "/metrics"
	StaticPrefix   = "/static/"
)

// Query parameter names shared by pages and fragments.
const (
	QueryCategory = "category"
	QueryCursor   = "cursor"
	QueryBanner   = "banner"
)

// Home returns the storefront root for category, omitting "all".
func Home(category string) string {
	return withCategory(Root, category)
}

// ProductGrid returns the grid fragment path for category.
func ProductGrid(category string) string {
	return withCategory(Products, category)
}

// MoreProducts returns the next-batch fragment path.
func MoreProducts(cursor, category string) string {
	values := url.Values{}
	if cursor != "" {
		values.Set(QueryCursor, cursor)
	}
	if c := strings.TrimSpace(category); c != "" && c != "all" {
		values.Set(QueryCategory, c)
	}
	if len(values) == 0 {
		return ProductsMore
	}
	return ProductsMore + "?" + values.Encode()
}

// Banner returns the storefront root showing banner index.
func Banner(category string, index int) string {
	values := url.Values{}
	if c := strings.TrimSpace(category); c != "" && c != "all" {
		values.Set(QueryCategory, c)
	}
	values.Set(QueryBanner, strconv.Itoa(index))
	return Root + "?" + values.Encode()
}

// Static returns the URL of an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(name, "/")
}

func withCategory(path, category string) string {
	category = strings.TrimSpace(category)
	if category == "" || category == "all" {
		return path
	}
	return path + "?" + url.Values{QueryCategory: {category}}.Encode()
}
