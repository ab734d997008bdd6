package types

import (
	"math"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// Amounts are 18-digit fixed point decimals so repeated payouts never drift.

func ZeroAmount() sdkmath.LegacyDec { return sdkmath.LegacyZeroDec() }

// ValidAmount reports whether d holds a value. The zero LegacyDec{} is the
// decimal analogue of a non-finite float.
func ValidAmount(d sdkmath.LegacyDec) bool {
	return !d.IsNil()
}

// ParseAmount parses a decimal such as "10", "2.5" or "-0.5".
func ParseAmount(s string) (sdkmath.LegacyDec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sdkmath.LegacyDec{}, ErrInvalidAmount.Wrap("empty amount")
	}
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		return sdkmath.LegacyDec{}, ErrInvalidAmount.Wrapf("%q: %v", s, err)
	}
	return d, nil
}

// AmountFromFloat converts a float amount from a presentation layer. NaN and
// infinities are rejected.
func AmountFromFloat(f float64) (sdkmath.LegacyDec, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return sdkmath.LegacyDec{}, ErrInvalidAmount.Wrapf("non-finite amount %v", f)
	}
	return ParseAmount(strconv.FormatFloat(f, 'f', -1, 64))
}

// MustAmount parses s and panics on failure. Meant for constants and tests.
func MustAmount(s string) sdkmath.LegacyDec {
	d, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FormatAmount renders d without trailing fractional zeros ("7.5", "10").
func FormatAmount(d sdkmath.LegacyDec) string {
	if d.IsNil() {
		return "<nil>"
	}
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Half returns d/2.
func Half(d sdkmath.LegacyDec) sdkmath.LegacyDec {
	return d.QuoInt64(2)
}
