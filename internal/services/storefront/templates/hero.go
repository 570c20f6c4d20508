package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/burjmall/storefront/internal/services/storefront/routepath"
)

// BannerInterval is how often the hero rotates, in milliseconds.
const BannerInterval = 5000

// DefaultBanners lists the hero banner images in display order.
func DefaultBanners() []string {
	return []string{routepath.Static("banner1.svg"), routepath.Static("banner2.svg")}
}

// Carousel is the hero banner position. Indexes wrap around in both
// directions.
type Carousel struct {
	Banners []string
	Current int
}

// NewCarousel positions a carousel at index, wrapped into range.
func NewCarousel(banners []string, index int) Carousel {
	c := Carousel{Banners: banners}
	c.Current = c.wrap(index)
	return c
}

// Next returns the index after the current one.
func (c Carousel) Next() int {
	return c.wrap(c.Current + 1)
}

// Prev returns the index before the current one.
func (c Carousel) Prev() int {
	return c.wrap(c.Current - 1)
}

// GoTo returns index wrapped into range.
func (c Carousel) GoTo(index int) int {
	return c.wrap(index)
}

func (c Carousel) wrap(index int) int {
	n := len(c.Banners)
	if n == 0 {
		return 0
	}
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

// Hero renders the rotating banner. Controls are links so the carousel
// works without JavaScript; app.js takes over rotation when loaded.
func Hero(c Carousel, category string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("section", "class", "hero", "data-carousel", "", "data-interval", strconv.Itoa(BannerInterval), "data-current", strconv.Itoa(c.Current))
		for i, banner := range c.Banners {
			class := "hero-slide"
			if i == c.Current {
				class = classes(class, "is-active")
			}
			h.open("div", "class", class, "data-slide", strconv.Itoa(i))
			h.open("img", "src", banner, "alt", T(loc, "hero.banner_alt", i+1))
			h.close("div")
		}
		h.element("div", T(loc, "hero.badge"), "class", "hero-badge")
		if len(c.Banners) > 1 {
			h.element("a", "‹", "href", routepath.Banner(category, c.Prev()), "class", "hero-prev", "aria-label", T(loc, "hero.previous"), "data-carousel-prev", "")
			h.element("a", "›", "href", routepath.Banner(category, c.Next()), "class", "hero-next", "aria-label", T(loc, "hero.next"), "data-carousel-next", "")
			h.open("div", "class", "hero-dots")
			for i := range c.Banners {
				class := "hero-dot"
				if i == c.Current {
					class = classes(class, "is-active")
				}
				h.open("a", "href", routepath.Banner(category, c.GoTo(i)), "class", class, "aria-label", T(loc, "hero.go_to", i+1), "data-carousel-dot", strconv.Itoa(i))
				h.close("a")
			}
			h.close("div")
		}
		h.close("section")
	})
}

type promoTile struct {
	class string
	keys  []string
}

// Promotions renders the three partner tiles under the hero.
func Promotions(loc Localizer) templ.Component {
	tiles := []promoTile{
		{class: "promo-tailor", keys: []string{"promo.tailor"}},
		{class: "promo-lorenzo", keys: []string{"promo.lorenzo"}},
		{class: "promo-property", keys: []string{"promo.property", "promo.property_brand"}},
	}
	return component(func(_ context.Context, h *htmlWriter) {
		h.open("section", "class", "promotions")
		for _, tile := range tiles {
			h.open("div", "class", classes("promo-tile", tile.class))
			for i, key := range tile.keys {
				tag := "strong"
				if i > 0 {
					tag = "span"
				}
				h.element(tag, T(loc, key))
			}
			h.close("div")
		}
		h.close("section")
	})
}
