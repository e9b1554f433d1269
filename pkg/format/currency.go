// Package format renders amounts for display.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns an amount prefixed with a currency code and grouped with
// thousands separators, e.g. "PKR 360,000.00" or "-EUR 1,234.56". An empty
// code renders a dollar sign ("$1,234.56").
func Currency(amount float64, code string) string {
	formatted := NumericCurrency(math.Abs(amount))
	sign := ""
	if amount < 0 && formatted != "0.00" {
		sign = "-"
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return sign + "$" + formatted
	}
	return sign + code + " " + formatted
}

// NumericCurrency returns an amount with separators but no currency symbol (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.2f", amount)
}

// Percent renders a percentage with one decimal, e.g. "83.3%".
func Percent(value float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.1f%%", value)
}
