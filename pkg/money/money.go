// Package money provides small helpers for working with decimal monetary
// amounts: annual/monthly conversion, rounding, and display formatting.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Annual converts a monthly amount to its annual equivalent.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Monthly converts an annual amount to its monthly equivalent.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Round rounds to cent precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Format renders an amount as a currency string with thousands separators,
// e.g. "$1,234.56". Negative amounts render as "-$1,234.56".
func Format(d decimal.Decimal) string {
	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a rate as a percentage with one decimal place,
// e.g. 0.065 -> "6.5%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
