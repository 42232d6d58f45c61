// Package money converts between the decimal amounts clients send over
// the wire and the int64 minor-unit balances the ledger stores. Keeping
// balances as exact integers avoids rounding error; decimals only ever
// exist at the boundary.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Exponent is the number of decimal places of the currency (cents).
const Exponent = 2

var (
	// ErrPrecision means the amount has more decimal places than the
	// currency supports, e.g. "10.005".
	ErrPrecision = errors.New("amount has sub-cent precision")
	// ErrRange means the amount does not fit in an int64 count of minor
	// units.
	ErrRange = errors.New("amount out of range")
)

// ToMinorUnits converts a major-unit decimal amount into minor units.
// "100.25" becomes 10025. Sign is preserved; callers validate sign.
func ToMinorUnits(d decimal.Decimal) (int64, error) {
	shifted := decimal.NewFromBigInt(d.Coefficient(), d.Exponent()+Exponent)
	if !shifted.IsInteger() {
		return 0, ErrPrecision
	}
	bi := shifted.BigInt()
	if !bi.IsInt64() {
		return 0, ErrRange
	}
	return bi.Int64(), nil
}

// FromMinorUnits converts minor units back to a major-unit decimal.
// 10025 becomes 100.25.
func FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -Exponent)
}

// Format renders minor units as a display string, "$100.25" style.
func Format(units int64) string {
	return "$" + FromMinorUnits(units).StringFixed(Exponent)
}
