package ui

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currency = "R"

// SetCurrency changes the symbol printed in front of prices.
func SetCurrency(sym string) {
	if sym = strings.TrimSpace(sym); sym != "" {
		currency = sym
	}
}

// Price rounds to two decimals for display, e.g. "R 73.33".
func Price(v float64) string {
	return currency + " " + Amount(v)
}

// Amount is Price without the currency symbol.
func Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Truncate shortens s to at most n runes, ending with "..." when there is room for it.
func Truncate(s string, n int) string {
	r := []rune(s)
	switch {
	case len(r) <= n:
		return s
	case n <= 0:
		return ""
	case n < 4:
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
