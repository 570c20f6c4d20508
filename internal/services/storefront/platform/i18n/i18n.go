// Package i18n resolves the request language and formats storefront copy.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var (
	supported = []language.Tag{language.English}
	matcher   = language.NewMatcher(supported)
	messages  = mustBuildCatalog()
)

// Supported returns the languages with a message catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the fallback language.
func Default() language.Tag {
	return language.English
}

// ResolveTag picks the best supported language from Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// Printer returns a catalog-backed printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// ForRequest returns the printer for the request language.
func ForRequest(r *http.Request) (*message.Printer, language.Tag) {
	tag := ResolveTag(r)
	return Printer(tag), tag
}

func mustBuildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(Default()))
	for key, value := range english {
		if err := builder.SetString(language.English, key, value); err != nil {
			panic("i18n: register " + key + ": " + err.Error())
		}
	}
	return builder
}
