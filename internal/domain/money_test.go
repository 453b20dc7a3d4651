package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"2.675", "2.68"},
		{"1.004", "1.00"},
		{"10", "10.00"},
		{"0.1", "0.10"},
		{"999.99", "999.99"},
	}
	for _, tc := range cases {
		got := Quantize(decimal.RequireFromString(tc.in))
		assert.Equalf(t, tc.want, got.StringFixed(2), "quantize %s", tc.in)
		assert.Truef(t, got.Exponent() >= -2, "quantize %s keeps two decimals", tc.in)
	}
}

func TestSumPrices(t *testing.T) {
	products := []Product{
		{Price: decimal.RequireFromString("999.99")},
		{Price: decimal.RequireFromString("499.99")},
	}
	assert.Equal(t, "1499.98", SumPrices(products).StringFixed(2))

	// Repeated additions must not accumulate float error.
	many := make([]Product, 0, 100)
	for i := 0; i < 100; i++ {
		many = append(many, Product{Price: decimal.RequireFromString("0.01")})
	}
	assert.Equal(t, "1.00", SumPrices(many).StringFixed(2))

	assert.Equal(t, "0.00", SumPrices(nil).StringFixed(2))
}
