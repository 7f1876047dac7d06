package domain

import (
	"github.com/shopspring/decimal"
)

// SafeParse parses a string into a decimal, returning zero for invalid or empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SafeSum adds two decimals.
func SafeSum(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// FormatAmount renders an amount without exponent or trailing zeros ("345", "10.5").
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}
