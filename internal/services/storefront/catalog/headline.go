package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryLabel turns a slug into lower-case words: "coffee-machines" becomes
// "coffee machines".
func CategoryLabel(slug string) string {
	return strings.ReplaceAll(NormalizeSlug(slug), "-", " ")
}

// CategoryHeadline title-cases the slug words: "lcd-screens" becomes
// "Lcd Screens".
func CategoryHeadline(slug string) string {
	return cases.Title(language.English).String(CategoryLabel(slug))
}
