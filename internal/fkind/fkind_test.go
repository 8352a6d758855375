package fkind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfTraits(t *testing.T) {
	require.Equal(t, 53, Of[float64]().MantissaBits)
	require.Equal(t, 24, Of[float32]().MantissaBits)
}

func TestRoundExactNormal(t *testing.T) {
	t64 := Of[float64]()
	// 1.0 == 2**63 * 2**-63, a 64-bit mantissa with the top bit set.
	field, biased, isInf := t64.Round(1<<63, -63)
	require.False(t, isInf)
	require.Equal(t, uint64(0), field)
	require.Equal(t, t64.Bias, biased) // unbiased exponent 0
	got := FromBits[float64](false, biased, field)
	require.Equal(t, 1.0, got)
}

func TestRoundOverflowToInf(t *testing.T) {
	t64 := Of[float64]()
	_, _, isInf := t64.Round(1<<63, int32(t64.MaxExp)+1-63)
	require.True(t, isInf)
}

func TestRoundSubnormalBoundary(t *testing.T) {
	t64 := Of[float64]()
	// The smallest subnormal, 2**-1074, represented as a normalized 64-bit
	// mantissa 2**63 at exponent -1074-63.
	field, biased, isInf := t64.Round(1<<63, int32(t64.SubnormalExp)-63)
	require.False(t, isInf)
	require.Equal(t, 0, biased)
	got := FromBits[float64](false, biased, field)
	require.Equal(t, math.SmallestNonzeroFloat64, got)
}

func TestRoundHalfToEven(t *testing.T) {
	t64 := Of[float64]()
	// mant has bit length 55 (53 mantissa bits + 2 extra): the bottom two
	// bits are "10", an exact tie, with the kept LSB even (0) -> round down.
	mant := uint64(0b1) << 54 // bit 54 set, two low bits both 0: lbits=55
	mant |= 1 << 1            // tie bit set (bit1), bit0=0 -> exact half, even already
	field, _, _ := t64.Round(mant, 0)
	require.Equal(t, uint64(0), field&1)
}
