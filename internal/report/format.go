// =============================================================================
// Sales Analytics - Report Value Formatting
// =============================================================================
//
// Monetary values in the report carry a fixed currency symbol, thousands
// separators and exactly 2 decimal places. Percentages render with 2 decimal
// places and a trailing percent sign.
//
// =============================================================================

package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the fixed symbol used for all monetary values.
const CurrencySymbol = "$"

// Money formats a monetary value, e.g. 1234567.8 -> "$1,234,567.80".
func Money(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)

	intPart := fixed
	fracPart := "00"
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	formatted := CurrencySymbol + groupThousands(intPart) + "." + fracPart
	if d.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Percent formats a share value, e.g. 75 -> "75.00%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// groupThousands inserts comma separators into a digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
