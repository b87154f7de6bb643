// Package money converts between major-unit amounts as stored on the
// ledger and the integer minor units (cents/paise) payment gateways
// expect. All arithmetic goes through decimals so transfer amounts
// never drift from the amounts fixed at order time.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("money: amount must not be negative")

// minorUnitExponent is 2 for every currency this marketplace settles in
// (INR, USD, EUR). Zero-decimal currencies would need a lookup table.
const minorUnitExponent = 2

// ToMinorUnits converts a major-unit amount (e.g. 499.50) to integer
// minor units (49950). Rounding is nearest-integer on the shifted
// value; truncation would lose money on amounts like 0.345.
func ToMinorUnits(amount float64) (int64, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	return decimal.NewFromFloat(amount).Shift(minorUnitExponent).Round(0).IntPart(), nil
}

// FromMinorUnits converts integer minor units back to a major-unit amount.
func FromMinorUnits(minor int64) float64 {
	f, _ := decimal.New(minor, -minorUnitExponent).Float64()
	return f
}

// Format renders an amount for human-facing notification text, always
// with two decimal places: Format(499.5, "INR") == "499.50 INR".
func Format(amount float64, currency string) string {
	return decimal.NewFromFloat(amount).StringFixed(minorUnitExponent) + " " + currency
}
