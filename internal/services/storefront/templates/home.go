package templates

import (
	"context"

	"github.com/a-h/templ"
)

// HomeView is the storefront landing page content.
type HomeView struct {
	Carousel Carousel
	Grid     GridView
}

// HomePage renders the hero, the promotional tiles and the catalog.
func HomePage(view HomeView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.render(ctx, Hero(view.Carousel, view.Grid.Category, loc))
		h.render(ctx, Promotions(loc))
		h.render(ctx, CatalogSection(view.Grid, loc))
	})
}
