package domain

import (
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
)

var tenInt = osmomath.NewInt(10)

// precisionScalingFactor returns 10^precision as an integer.
func precisionScalingFactor(precision int) osmomath.Int {
	result := osmomath.OneInt()
	for i := 0; i < precision; i++ {
		result = result.Mul(tenInt)
	}
	return result
}

// ParseUnits parses a canonical decimal string into base units at the given
// precision. Rejects empty strings, non-numeric characters and fractional
// parts longer than the precision.
func ParseUnits(amount string, precision int) (osmomath.Int, error) {
	whole, frac, _ := strings.Cut(amount, ".")
	if whole == "" && frac == "" {
		return osmomath.Int{}, InvalidAmountError{Amount: amount}
	}

	if len(frac) > precision {
		return osmomath.Int{}, PrecisionExceededError{Amount: amount, Precision: precision}
	}

	digits := whole + frac + strings.Repeat("0", precision-len(frac))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return osmomath.ZeroInt(), nil
	}

	result, ok := osmomath.NewIntFromString(digits)
	if !ok {
		return osmomath.Int{}, InvalidAmountError{Amount: amount}
	}
	return result, nil
}

// FormatUnits renders base units as a canonical decimal string at the given
// precision, trimming trailing fractional zeros.
func FormatUnits(amount osmomath.Int, precision int) string {
	if amount.IsNil() {
		return ""
	}
	if precision == 0 {
		return amount.String()
	}

	scale := precisionScalingFactor(precision)
	whole := amount.Quo(scale)
	rem := amount.Mod(scale)
	if rem.IsZero() {
		return whole.String()
	}

	frac := rem.String()
	for len(frac) < precision {
		frac = "0" + frac
	}
	frac = strings.TrimRight(frac, "0")

	return whole.String() + "." + frac
}
