// Package money centralizes the monetary rounding rules. Every value
// that leaves an arithmetic step is rounded to 2 decimal places, and the
// 0.01 epsilon below is the sole definition of "settled".
package money

import "github.com/shopspring/decimal"

// Epsilon is the smallest monetary quantum. Balances with absolute value
// below it are treated as zero.
var Epsilon = decimal.New(1, -2) // 0.01

// Round2 rounds to 2 decimal places, half away from zero. Apply it after
// every addition, subtraction, or division that produces a monetary
// value so floating drift never compounds.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsZero reports whether d is within Epsilon of zero.
func IsZero(d decimal.Decimal) bool {
	return d.Abs().LessThan(Epsilon)
}

// Parse converts a user-supplied amount string to a decimal.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
