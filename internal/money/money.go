// Package money provides locale-aware numeric parsing and tolerance
// arithmetic for monetary amounts, built on shopspring/decimal.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// ParseNumber converts a numeric string into a decimal, handling both
// European ("1.234,56") and US ("1,234.56") separator conventions.
//
// All characters other than digits, comma, dot and minus are stripped
// first. When both comma and dot appear, whichever occurs last is the
// decimal separator and the other is a thousands separator. A lone
// comma is a decimal separator.
//
// The function is total: malformed input returns ok=false, never a
// panic or an error.
func ParseNumber(raw string) (decimal.Decimal, bool) {
	cleaned := stripNonNumeric(raw)
	if cleaned == "" {
		return Zero, false
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Zero, false
	}
	return d, true
}

func stripNonNumeric(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Ptr returns a pointer to d, for optional monetary fields.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// FromFloat creates a decimal from a float, rounded to 2 places
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// WithinTolerance reports whether |a - b| <= tol.
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}

// IsNegative returns true if the decimal is below zero
func IsNegative(d decimal.Decimal) bool {
	return d.LessThan(Zero)
}
