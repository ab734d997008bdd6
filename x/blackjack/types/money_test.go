package types

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestRepeatedHalfIncrementsAreExact(t *testing.T) {
	b, err := NewBankroll("player", sdkmath.LegacyNewDec(1000))
	require.NoError(t, err)

	half := MustAmount("0.5")
	var halves int64
	for i := 0; i < 10000; i++ {
		n := int64(i%7 + 1)
		if i%3 == 0 {
			n = -n
		}
		halves += n
		b.Apply(half.MulInt64(n))
	}
	want := sdkmath.LegacyNewDec(1000).Add(sdkmath.LegacyNewDecWithPrec(halves*5, 1))
	require.True(t, want.Equal(b.Balance()), "got %s want %s", b.Balance(), want)
}

func TestTenThousandHalfUnitsSumExactly(t *testing.T) {
	total := ZeroAmount()
	for i := 0; i < 10000; i++ {
		total = total.Add(MustAmount("0.5"))
	}
	require.Equal(t, "5000", FormatAmount(total))

	for i := 0; i < 10000; i++ {
		total = total.Sub(MustAmount("0.5"))
	}
	require.True(t, total.IsZero())
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 2.5 ")
	require.NoError(t, err)
	require.Equal(t, "2.5", FormatAmount(d))

	_, err = ParseAmount("")
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = ParseAmount("ten")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmountFromFloat(t *testing.T) {
	d, err := AmountFromFloat(7.5)
	require.NoError(t, err)
	require.Equal(t, "7.5", FormatAmount(d))

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := AmountFromFloat(f)
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "10", FormatAmount(sdkmath.LegacyNewDec(10)))
	require.Equal(t, "-7.5", FormatAmount(MustAmount("-7.50")))
	require.Equal(t, "0", FormatAmount(ZeroAmount().Neg()))
	require.Equal(t, "<nil>", FormatAmount(sdkmath.LegacyDec{}))
	require.Equal(t, "5", FormatAmount(Half(sdkmath.LegacyNewDec(10))))
}

func TestNewBankroll(t *testing.T) {
	_, err := NewBankroll("p", sdkmath.LegacyNewDec(-1))
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = NewBankroll("p", sdkmath.LegacyDec{})
	require.ErrorIs(t, err, ErrInvalidAmount)

	b, err := NewBankroll("p", sdkmath.LegacyZeroDec())
	require.NoError(t, err)
	b.Apply(MustAmount("-2.5"))
	require.Equal(t, "-2.5", FormatAmount(b.Balance()))
}
