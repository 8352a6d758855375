package pow10

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// entryValue reconstructs the big.Float value Mant*2**Exp2 an Entry
// approximates, for comparison against an exact math/big oracle.
func entryValue(e Entry) *big.Float {
	v := new(big.Float).SetPrec(200).SetUint64(e.Mant)
	return v.SetMantExp(v, int(e.Exp2))
}

func exactPow10(exp10 int) *big.Float {
	f := new(big.Float).SetPrec(200)
	if exp10 >= 0 {
		bi := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp10)), nil)
		return f.SetInt(bi)
	}
	bi := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp10)), nil)
	num := new(big.Float).SetPrec(200).SetInt(bi)
	return f.Quo(big.NewFloat(1).SetPrec(200), num)
}

func TestLookupWithinTolerance(t *testing.T) {
	for exp10 := MinDecimalExp10; exp10 <= MaxDecimalExp10; exp10++ {
		e, ok := Lookup(exp10)
		require.True(t, ok, "exp10=%d", exp10)
		require.NotZero(t, e.Mant>>63, "mantissa must be normalized, exp10=%d", exp10)

		got := entryValue(e)
		want := exactPow10(exp10)
		relErr := new(big.Float).SetPrec(200).Sub(got, want)
		relErr.Quo(relErr, want)
		relErr.Abs(relErr)
		// One renormalizing multiply plus the two table entries' own
		// rounding should stay far inside 2**-60 relative error.
		bound := new(big.Float).SetPrec(200).SetMantExp(big.NewFloat(1), -60)
		require.True(t, relErr.Cmp(bound) < 0, "exp10=%d relErr=%v", exp10, relErr)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	_, ok := Lookup(MinDecimalExp10 - 1)
	require.False(t, ok)
	_, ok = Lookup(MaxDecimalExp10 + 1)
	require.False(t, ok)
}

func TestMaxExactPow10(t *testing.T) {
	require.Equal(t, 22, MaxExactPow10(53))
	require.Equal(t, 10, MaxExactPow10(24))
}

func TestMulNormalizes(t *testing.T) {
	a := Entry{Mant: 1 << 63, Exp2: -63} // 1.0
	b := Entry{Mant: 1 << 63, Exp2: -63} // 1.0
	r := Mul(a, b)
	require.Equal(t, uint64(1)<<63, r.Mant)
	require.Equal(t, int32(-63), r.Exp2) // 1.0 * 1.0 == 1.0
}
