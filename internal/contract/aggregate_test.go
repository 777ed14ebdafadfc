package contract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nurpe/pedidos/internal/model"
)

func TestAggregate(t *testing.T) {
	items := []model.LineItem{
		{Quantity: "2", Description: "Bolo", TotalValue: "100,00"},
		{Quantity: "3", Description: "Torta", TotalValue: "60,00"},
		{Quantity: "x", Description: "Pudim", TotalValue: "abc"},
		{Quantity: "5", Description: "Brigadeiro", TotalValue: "1.000,50"},
	}

	got := Aggregate(items)

	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, "Bolo, Torta, Pudim, Brigadeiro", got.Flavors)
	assert.True(t, decimal.RequireFromString("1160.50").Equal(got.ItemsTotal), got.ItemsTotal.String())
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)

	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, "", got.Flavors)
	assert.True(t, got.ItemsTotal.IsZero())
}

func TestAggregateSkipsEmptyDescriptions(t *testing.T) {
	got := Aggregate([]model.LineItem{
		{Quantity: "1", Description: ""},
		{Quantity: "1", Description: "Quindim"},
	})

	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "Quindim", got.Flavors)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "50,00", want: "50", ok: true},
		{raw: "1.234,56", want: "1234.56", ok: true},
		{raw: "1234.56", want: "1234.56", ok: true},
		{raw: " 10 ", want: "10", ok: true},
		{raw: "", ok: false},
		{raw: "abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "0", want: "0,00"},
		{value: "60", want: "60,00"},
		{value: "100.5", want: "100,50"},
		{value: "1250.25", want: "1.250,25"},
		{value: "1234567.891", want: "1.234.567,89"},
		{value: "-999.9", want: "-999,90"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.value)))
		})
	}
}
