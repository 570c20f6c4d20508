package catalog

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

func loadFixturePage(t *testing.T) Page {
	t.Helper()
	data, err := os.ReadFile("testdata/page1.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return page
}

func TestDecodeListingEnvelope(t *testing.T) {
	t.Parallel()

	page := loadFixturePage(t)
	if len(page.Products) != 2 {
		t.Fatalf("products = %d, want 2", len(page.Products))
	}
	if !page.Pagination.HasMore() || page.Pagination.Total != 23 {
		t.Fatalf("pagination = %+v", page.Pagination)
	}
	first := page.Products[0]
	if first.Category.Name != "Coffee Machines" || first.BaseUnit.Description != nil {
		t.Fatalf("unexpected first product %+v", first)
	}
	if sale := first.ProductUnits[0].SalePrice; sale == nil || *sale != "1200.00" {
		t.Fatalf("sale price = %v", sale)
	}
	if first.ProductUnits[0].PurchasePrice != nil {
		t.Fatal("expected null purchase price")
	}
	if got := page.Products[1].Price; got != "45" {
		t.Fatalf("numeric price decoded as %q, want %q", got, "45")
	}
}

func TestProductKey(t *testing.T) {
	t.Parallel()

	if got := (Product{ID: 11, Code: "CM-100"}).Key(); got != "11-CM-100" {
		t.Fatalf("Key() = %q, want %q", got, "11-CM-100")
	}
}

func TestPrimaryImageURL(t *testing.T) {
	t.Parallel()

	page := loadFixturePage(t)
	if got := page.Products[0].PrimaryImageURL(); got != "https://cdn.example.com/b.jpg" {
		t.Fatalf("PrimaryImageURL() = %q, want primary gallery image", got)
	}
	if got := page.Products[1].PrimaryImageURL(); got != "" {
		t.Fatalf("PrimaryImageURL() = %q, want empty", got)
	}
	fallback := Product{ImageURL: "https://cdn.example.com/main.jpg", Images: []ProductImage{{ImageURL: "x", IsPrimary: false}}}
	if got := fallback.PrimaryImageURL(); got != "https://cdn.example.com/main.jpg" {
		t.Fatalf("PrimaryImageURL() = %q, want product image", got)
	}
}

func TestPriceAmount(t *testing.T) {
	t.Parallel()

	if got := (Product{Price: "1234.5"}).PriceAmount(); !got.Equal(decimal.RequireFromString("1234.5")) {
		t.Fatalf("PriceAmount() = %s", got)
	}
	if got := (Product{Price: "n/a"}).PriceAmount(); !got.IsZero() {
		t.Fatalf("PriceAmount(invalid) = %s, want 0", got)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price Amount
		want  string
	}{
		{price: "1234.5", want: "AED 1,234.50"},
		{price: "45", want: "AED 45.00"},
		{price: "0.005", want: "AED 0.01"},
		{price: "1000000", want: "AED 1,000,000.00"},
		{price: "999.995", want: "AED 1,000.00"},
		{price: "123456789012345678.91", want: "AED 123,456,789,012,345,678.91"},
		{price: "-1234.5", want: "AED -1,234.50"},
		{price: "garbage", want: "AED 0.00"},
		{price: "", want: "AED 0.00"},
	}
	for _, tc := range tests {
		if got := (Product{Price: tc.price}).DisplayPrice(); got != tc.want {
			t.Fatalf("DisplayPrice(%q) = %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestEmptyPage(t *testing.T) {
	t.Parallel()

	page := EmptyPage()
	want := Pagination{Total: 0, PerPage: 10, CurrentPage: 1, LastPage: 1}
	if len(page.Products) != 0 || page.Pagination != want {
		t.Fatalf("EmptyPage() = %+v", page)
	}
	if page.Pagination.HasMore() {
		t.Fatal("expected empty page to have no more pages")
	}
}
