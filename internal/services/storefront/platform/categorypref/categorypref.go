// Package categorypref persists the shopper's active catalog category.
package categorypref

import (
	"net/http"
	"strings"
	"time"

	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	"github.com/burjmall/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

// CookieName is the active category cookie.
const CookieName = "sf_category"

const (
	maxSlugLength = 64
	cookieMaxAge  = 365 * 24 * time.Hour
)

// Sanitize normalizes slug, returning "" when it holds anything other than
// lower-case letters, digits and hyphens.
func Sanitize(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" || len(slug) > maxSlugLength {
		return ""
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return ""
		}
	}
	return slug
}

// Read returns the stored category when present and valid.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	slug := Sanitize(cookie.Value)
	return slug, slug != ""
}

// Resolve returns the active category: the query parameter, then the
// cookie, then all.
func Resolve(r *http.Request) string {
	if r == nil {
		return catalog.AllCategories
	}
	if slug := Sanitize(r.URL.Query().Get(routepath.QueryCategory)); slug != "" {
		return slug
	}
	if slug, ok := Read(r); ok {
		return slug
	}
	return catalog.AllCategories
}

// Write stores slug. Invalid slugs store "all".
func Write(w http.ResponseWriter, r *http.Request, slug string, policy requestmeta.SchemePolicy) string {
	slug = Sanitize(slug)
	if slug == "" {
		slug = catalog.AllCategories
	}
	if w == nil {
		return slug
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    slug,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cookieMaxAge / time.Second),
	})
	return slug
}
