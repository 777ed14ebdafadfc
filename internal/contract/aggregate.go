package contract

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nurpe/pedidos/internal/model"
)

// Summary holds the values derived from the contracted products.
type Summary struct {
	Quantity   int
	Flavors    string
	ItemsTotal decimal.Decimal
}

// Aggregate sums the item quantities and joins the item descriptions in
// order. A quantity that is not an integer counts as zero; its description
// is still listed.
func Aggregate(items []model.LineItem) Summary {
	var (
		quantity int
		flavors  = make([]string, 0, len(items))
		total    = decimal.Zero
	)
	for _, item := range items {
		if n, err := strconv.Atoi(strings.TrimSpace(item.Quantity)); err == nil {
			quantity += n
		}
		if item.Description != "" {
			flavors = append(flavors, item.Description)
		}
		if amount, ok := ParseAmount(item.TotalValue); ok {
			total = total.Add(amount)
		}
	}
	return Summary{
		Quantity:   quantity,
		Flavors:    strings.Join(flavors, ", "),
		ItemsTotal: total,
	}
}

// ParseAmount reads a money value written the Brazilian way ("1.234,56").
// Without a comma the value is read as a plain decimal ("1234.56").
func ParseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// FormatAmount writes a money value the Brazilian way, with two decimals.
func FormatAmount(value decimal.Decimal) string {
	fixed := value.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if value.IsNegative() {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
