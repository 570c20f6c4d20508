package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the display currency for all catalog prices.
const Currency = "AED"

// FormatPrice renders amount as "AED 1,234.50": grouped thousands, exactly
// two fraction digits, half away from zero. Digits come from the decimal
// itself, so precision is not bounded by float64.
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return Currency + " " + sign + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// DisplayPrice formats the product price. Unparseable prices show as zero.
func (p Product) DisplayPrice() string {
	return FormatPrice(p.PriceAmount())
}
