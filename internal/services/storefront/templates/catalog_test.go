package templates

import (
	"strings"
	"testing"

	"github.com/burjmall/storefront/internal/services/storefront/catalog"
	"golang.org/x/net/html"
)

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:       1,
			Code:     "CM-1",
			Name:     "Espresso Pro",
			Price:    "1234.5",
			Category: catalog.Category{Name: "Coffee Machines"},
			Images:   []catalog.ProductImage{{IsPrimary: true, ImageURL: "https://cdn.example/a.jpg"}},
		},
		{
			ID:       2,
			Code:     "PW-1",
			Name:     "Vanilla Powder",
			Price:    "45",
			Category: catalog.Category{Name: "Flavour Powders"},
		},
	}
}

func TestGridWithMoreRendersSentinel(t *testing.T) {
	t.Parallel()

	view := GridView{
		Products: sampleProducts(),
		Shown:    2,
		Total:    30,
		HasMore:  true,
		NextURL:  "/products/more?cursor=abc",
	}
	_, doc := renderComponent(t, Grid(view, testLocalizer()))

	list := findNode(doc, byID("product-list"))
	if list == nil {
		t.Fatal("expected product list")
	}
	if cards := findAll(list, byClass("product-card")); len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	sentinel := findNode(list, byID("feed-sentinel"))
	if sentinel == nil {
		t.Fatal("expected feed sentinel")
	}
	if got := attr(sentinel, "hx-get"); got != view.NextURL {
		t.Fatalf("sentinel hx-get = %q, want %q", got, view.NextURL)
	}
	if got := attr(sentinel, "hx-trigger"); got != "revealed" {
		t.Fatalf("sentinel hx-trigger = %q, want revealed", got)
	}
	if got := textOf(sentinel); got != "Loading more products..." {
		t.Fatalf("sentinel text = %q", got)
	}
	if findNode(doc, byClass("feed-end")) != nil {
		t.Fatal("end notice rendered while more remain")
	}
}

func TestGridEndNotice(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, Grid(GridView{Products: sampleProducts(), Shown: 7, Total: 9}, testLocalizer()))
	end := findNode(doc, byClass("feed-end"))
	if end == nil {
		t.Fatal("expected end notice")
	}
	want := "You've reached the end of the product list Showing 7 of 9 total products"
	if got := textOf(end); got != want {
		t.Fatalf("end notice = %q, want %q", got, want)
	}
	if findNode(doc, byID("feed-sentinel")) != nil {
		t.Fatal("sentinel rendered after the feed ended")
	}
}

func TestGridStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		view  GridView
		class string
		want  string
	}{
		{
			name:  "empty all",
			view:  GridView{},
			class: "grid-empty",
			want:  "No products found Try adjusting your search criteria",
		},
		{
			name:  "empty category",
			view:  GridView{Category: "coffee-machines"},
			class: "grid-empty",
			want:  "No products found in coffee machines Try adjusting your search criteria",
		},
		{
			name:  "error",
			view:  GridView{Error: "Products are temporarily unavailable", Category: "powders"},
			class: "grid-error",
			want:  "Error loading products Products are temporarily unavailable Try Again",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, doc := renderComponent(t, Grid(tc.view, testLocalizer()))
			node := findNode(doc, byClass(tc.class))
			if node == nil {
				t.Fatalf("expected .%s", tc.class)
			}
			if got := textOf(node); got != tc.want {
				t.Fatalf("text = %q, want %q", got, tc.want)
			}
			if findNode(doc, byID("product-list")) != nil {
				t.Fatal("product list rendered in a terminal state")
			}
		})
	}
}

func TestGridErrorRetryTargetsCatalog(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, Grid(GridView{Error: "boom", Category: "powders"}, testLocalizer()))
	retry := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && hasAttr(n, "hx-get")
	})
	if retry == nil {
		t.Fatal("expected retry link")
	}
	if got := attr(retry, "hx-get"); got != "/products?category=powders" {
		t.Fatalf("retry hx-get = %q", got)
	}
	if got := attr(retry, "hx-target"); got != "#catalog" {
		t.Fatalf("retry hx-target = %q", got)
	}
}

func TestCatalogSectionCategoryInfo(t *testing.T) {
	t.Parallel()

	view := GridView{Category: "lcd-screens", Products: sampleProducts()[:1], Shown: 1, Total: 4}
	_, doc := renderComponent(t, CatalogSection(view, testLocalizer()))

	if findNode(doc, byID(CatalogSectionID)) == nil {
		t.Fatal("expected catalog section")
	}
	info := findNode(doc, byClass("category-info"))
	if info == nil {
		t.Fatal("expected category info for a filtered view")
	}
	if got := textOf(info); got != "Lcd Screens Showing 1 products" {
		t.Fatalf("category info = %q", got)
	}
	active := findNode(doc, byClass("is-active"))
	if active == nil || textOf(active) != "LCD Screens" {
		t.Fatal("expected LCD Screens marked active")
	}
}

func TestCatalogSectionAllHasNoInfo(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, CatalogSection(GridView{Products: sampleProducts(), Shown: 2, Total: 2}, testLocalizer()))
	if findNode(doc, byClass("category-info")) != nil {
		t.Fatal("unfiltered view should not render category info")
	}
	active := findNode(doc, byClass("is-active"))
	if active == nil || textOf(active) != "All" {
		t.Fatal("expected All marked active")
	}
}

func TestCategoryNavPostsSlug(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, CategoryNav("all", testLocalizer()))
	forms := findAll(doc, byTag("form"))
	if len(forms) != len(catalog.NavCategories()) {
		t.Fatalf("forms = %d, want %d", len(forms), len(catalog.NavCategories()))
	}
	second := forms[1]
	if got := attr(second, "hx-post"); got != "/category" {
		t.Fatalf("hx-post = %q, want /category", got)
	}
	if got := attr(second, "hx-target"); got != "#catalog" {
		t.Fatalf("hx-target = %q, want #catalog", got)
	}
	input := findNode(second, byTag("input"))
	if input == nil || attr(input, "value") != "coffee-machines" {
		t.Fatal("expected hidden coffee-machines slug")
	}
}

func TestMoreProductsFragment(t *testing.T) {
	t.Parallel()

	view := GridView{Category: "powders", Products: sampleProducts()[1:], Shown: 3, Total: 3}
	out, doc := renderComponent(t, MoreProducts(view, testLocalizer()))

	if strings.Contains(out, `id="product-list"`) {
		t.Fatal("fragment should not repeat the grid container")
	}
	count := findNode(doc, byID(CategoryCountID))
	if count == nil {
		t.Fatal("expected out-of-band category count")
	}
	if got := attr(count, "hx-swap-oob"); got != "true" {
		t.Fatalf("hx-swap-oob = %q, want true", got)
	}
	if got := textOf(count); got != "Showing 3 products" {
		t.Fatalf("count = %q", got)
	}
	if findNode(doc, byClass("feed-end")) == nil {
		t.Fatal("expected end notice in final batch")
	}
}

func TestMoreProductsAllSkipsCount(t *testing.T) {
	t.Parallel()

	out, _ := renderComponent(t, MoreProducts(GridView{Products: sampleProducts(), Shown: 2, HasMore: true, NextURL: "/products/more?cursor=x"}, testLocalizer()))
	if strings.Contains(out, CategoryCountID) {
		t.Fatal("unfiltered batch should not update the category count")
	}
}

func TestMoreProductsEmptyFeed(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, MoreProducts(GridView{Category: "powders"}, testLocalizer()))
	if findNode(doc, byClass("grid-empty")) == nil {
		t.Fatal("expected empty state when the feed ended with nothing shown")
	}
}

func TestProductCard(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	_, doc := renderComponent(t, ProductCard(products[0], testLocalizer()))
	img := findNode(doc, byTag("img"))
	if img == nil || attr(img, "src") != "https://cdn.example/a.jpg" {
		t.Fatal("expected primary image")
	}
	if got := textOf(findNode(doc, byClass("product-price"))); got != "AED 1,234.50" {
		t.Fatalf("price = %q, want %q", got, "AED 1,234.50")
	}
	if got := textOf(findNode(doc, byClass("product-category"))); got != "Coffee Machines" {
		t.Fatalf("category = %q", got)
	}
	button := findNode(doc, byClass("add-to-cart"))
	if button == nil || attr(button, "aria-label") != "Add Espresso Pro to cart" {
		t.Fatal("expected labelled add-to-cart button")
	}

	_, doc = renderComponent(t, ProductCard(products[1], testLocalizer()))
	if findNode(doc, byTag("img")) != nil {
		t.Fatal("product without image should not render img")
	}
	if got := textOf(findNode(doc, byClass("no-image"))); got != "No Image" {
		t.Fatalf("placeholder = %q", got)
	}
}

func TestFeedTailRetryAfterFailure(t *testing.T) {
	t.Parallel()

	view := GridView{Shown: 4, HasMore: true, NextURL: "/products/more?cursor=abc", Error: "Products are temporarily unavailable"}
	_, doc := renderComponent(t, MoreProducts(view, testLocalizer()))
	sentinel := findNode(doc, byID("feed-sentinel"))
	if sentinel == nil {
		t.Fatal("expected retry sentinel")
	}
	if hasAttr(sentinel, "hx-trigger") {
		t.Fatal("failed batch must not auto-load on reveal")
	}
	button := findNode(sentinel, byTag("button"))
	if button == nil || attr(button, "hx-get") != view.NextURL {
		t.Fatal("expected manual retry button")
	}
}

func TestFeedTailTerminalError(t *testing.T) {
	t.Parallel()

	_, doc := renderComponent(t, FeedTail(GridView{Category: "powders", Shown: 4, Error: "expired"}, testLocalizer()))
	end := findNode(doc, byClass("feed-end"))
	if end == nil || attr(end, "role") != "alert" {
		t.Fatal("expected error row")
	}
	link := findNode(end, byTag("a"))
	if link == nil || attr(link, "href") != "/?category=powders" {
		t.Fatal("expected reload link for the category")
	}
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	view := HomeView{
		Carousel: NewCarousel(DefaultBanners(), 0),
		Grid:     GridView{Products: sampleProducts(), Shown: 2, Total: 2},
	}
	_, doc := renderComponent(t, HomePage(view, testLocalizer()))
	for _, class := range []string{"hero", "promotions"} {
		if findNode(doc, byClass(class)) == nil {
			t.Fatalf("missing .%s", class)
		}
	}
	if findNode(doc, byID(CatalogSectionID)) == nil {
		t.Fatal("missing catalog section")
	}
}
