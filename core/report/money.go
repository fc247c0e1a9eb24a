// Package report - USD formatting
package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD renders a whole-dollar amount with thousands separators,
// rounding half away from zero ($2,500).
func FormatUSD(d decimal.Decimal) string {
	rounded := d.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "$" + groupThousands(rounded.StringFixed(0))
}

// FormatUSDCents renders an amount with cents and thousands
// separators ($1,234.56).
func FormatUSDCents(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + cents
}

// groupThousands inserts commas into a non-negative integer string
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
