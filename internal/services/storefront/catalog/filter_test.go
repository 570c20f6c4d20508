package catalog

import "testing"

func productIn(category string) Product {
	return Product{Category: Category{Name: category}}
}

func TestMatchesCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug     string
		category string
		want     bool
	}{
		{slug: "all", category: "Anything", want: true},
		{slug: "", category: "Anything", want: true},
		{slug: "lcd-screens", category: "LCD Displays", want: true},
		{slug: "lcd-screens", category: "Computer Monitors", want: true},
		{slug: "lcd-screens", category: "Coffee Machines", want: false},
		{slug: "ice-machines", category: "Chest Freezer", want: true},
		{slug: "coffee-machines", category: "Espresso", want: true},
		{slug: "coffee-machines", category: "Ice Machine", want: true},
		{slug: "accessories", category: "Spare Parts", want: true},
		{slug: "dining-room", category: "Chairs", want: true},
		{slug: "powders", category: "Dessert Mix", want: true},
		{slug: "powders", category: "Cups", want: false},
		{slug: "unknown-slug", category: "Cups", want: true},
		{slug: "Coffee-Machines", category: "COFFEE", want: true},
	}
	for _, tc := range tests {
		if got := MatchesCategory(productIn(tc.category), tc.slug); got != tc.want {
			t.Fatalf("MatchesCategory(%q, %q) = %v, want %v", tc.category, tc.slug, got, tc.want)
		}
	}
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	t.Parallel()

	products := []Product{
		{ID: 1, Category: Category{Name: "Coffee Machines"}},
		{ID: 2, Category: Category{Name: "Cups"}},
		{ID: 3, Category: Category{Name: "Espresso Parts"}},
	}
	got := FilterByCategory(products, "coffee-machines")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("FilterByCategory() = %+v", got)
	}
	if all := FilterByCategory(products, "all"); len(all) != 3 {
		t.Fatalf("FilterByCategory(all) = %d products, want 3", len(all))
	}
}

func TestKnownCategory(t *testing.T) {
	t.Parallel()

	for _, nav := range NavCategories()[1:] {
		if !KnownCategory(nav.Slug) {
			t.Fatalf("nav slug %q has no keyword family", nav.Slug)
		}
	}
	if KnownCategory("all") || KnownCategory("toys") {
		t.Fatal("unexpected known category")
	}
}
