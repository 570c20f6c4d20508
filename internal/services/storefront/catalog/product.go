package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal money value the catalog API sends as a string. Numbers
// and null are accepted as well.
type Amount string

// UnmarshalJSON accepts "12.50", 12.5 and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(n.String())
	}
	return nil
}

// Decimal parses the amount. Unparseable amounts report ok=false.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	value := strings.TrimSpace(string(a))
	if value == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Category is a product category.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Brand is a product brand.
type Brand struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// BaseUnit is a unit of measure.
type BaseUnit struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// ProductUnit is an alternative selling unit for a product.
type ProductUnit struct {
	ID             int64    `json:"id"`
	ProductID      int64    `json:"product_id"`
	UnitID         int64    `json:"unit_id"`
	ConversionRate Amount   `json:"conversion_rate"`
	PurchasePrice  *Amount  `json:"purchase_price"`
	SalePrice      *Amount  `json:"sale_price"`
	Unit           BaseUnit `json:"unit"`
}

// ProductImage is one gallery image.
type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	ImagePath string `json:"image_path"`
	ImageName string `json:"image_name"`
	ImageType string `json:"image_type"`
	ImageSize int64  `json:"image_size"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
	ImageURL  string `json:"image_url"`
}

// Product is one catalog entry as served by a catalog source.
type Product struct {
	ID             int64          `json:"id"`
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	CategoryID     int64          `json:"category_id"`
	BrandID        int64          `json:"brand_id"`
	BaseUnitID     int64          `json:"base_unit_id"`
	Price          Amount         `json:"price"`
	Image          string         `json:"image"`
	Type           string         `json:"type"`
	HasInstallment bool           `json:"has_installment"`
	Status         string         `json:"status"`
	ImageURL       string         `json:"image_url"`
	Category       Category       `json:"category"`
	Brand          Brand          `json:"brand"`
	BaseUnit       BaseUnit       `json:"base_unit"`
	ProductUnits   []ProductUnit  `json:"product_units"`
	Images         []ProductImage `json:"images"`
}

// Key identifies the product within a merged listing.
func (p Product) Key() string {
	return strconv.FormatInt(p.ID, 10) + "-" + p.Code
}

// PrimaryImageURL returns the first primary gallery image, falling back to
// the product image. Empty means no image.
func (p Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsPrimary && strings.TrimSpace(img.ImageURL) != "" {
			return img.ImageURL
		}
	}
	return strings.TrimSpace(p.ImageURL)
}

// PriceAmount parses the product price; invalid prices are zero.
func (p Product) PriceAmount() decimal.Decimal {
	d, _ := p.Price.Decimal()
	return d
}

// Pagination describes one page of a source listing.
type Pagination struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// HasMore reports whether pages remain after this one.
func (p Pagination) HasMore() bool {
	return p.CurrentPage < p.LastPage
}

// Page is one decoded source response.
type Page struct {
	Products   []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// EmptyPage is the page substituted for a failed fetch.
func EmptyPage() Page {
	return Page{
		Products: []Product{},
		Pagination: Pagination{
			Total:       0,
			PerPage:     10,
			CurrentPage: 1,
			LastPage:    1,
		},
	}
}
