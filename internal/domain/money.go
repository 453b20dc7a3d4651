package domain

import "github.com/shopspring/decimal"

// Quantize rounds a monetary amount to two decimal places, half up.
// Amounts here are never negative, so Round's half-away-from-zero is
// exactly half-up.
func Quantize(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// SumPrices returns the quantized sum of the products' current prices.
func SumPrices(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return Quantize(total)
}
