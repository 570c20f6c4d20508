// Package templates renders storefront pages and HTMX fragments as templ
// components.
package templates
