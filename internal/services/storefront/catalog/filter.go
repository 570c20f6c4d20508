package catalog

import "strings"

// AllCategories is the slug that disables filtering.
const AllCategories = "all"

// categoryKeywords maps known slugs to the category-name substrings they match.
var categoryKeywords = map[string][]string{
	"lcd-screens":     {"lcd", "screen", "monitor"},
	"ice-machines":    {"ice", "freezer", "cooler"},
	"coffee-machines": {"coffee", "espresso", "machine"},
	"accessories":     {"accessory", "part", "tool"},
	"dining-room":     {"dining", "table", "chair"},
	"powders":         {"powder", "mix", "ingredient"},
}

// NormalizeSlug lower-cases and trims slug; empty becomes AllCategories.
func NormalizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return AllCategories
	}
	return slug
}

// KnownCategory reports whether slug has a keyword family.
func KnownCategory(slug string) bool {
	_, ok := categoryKeywords[NormalizeSlug(slug)]
	return ok
}

// MatchesCategory reports whether p belongs under slug. "all" and unknown
// slugs match everything.
func MatchesCategory(p Product, slug string) bool {
	keywords, ok := categoryKeywords[NormalizeSlug(slug)]
	if !ok {
		return true
	}
	name := strings.ToLower(p.Category.Name)
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// FilterByCategory returns the products under slug, preserving order.
func FilterByCategory(products []Product, slug string) []Product {
	if _, ok := categoryKeywords[NormalizeSlug(slug)]; !ok {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p, slug) {
			out = append(out, p)
		}
	}
	return out
}
