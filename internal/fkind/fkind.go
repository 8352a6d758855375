// Package fkind holds the per-target-float-kind constants and the
// round-half-to-even logic that the moderate (extfloat) path rounds its
// 64-bit-mantissa results through; the slow path (Algorithm M) uses the
// constants but rounds its exact quotient itself. Lives
// under internal/ rather than in the root package so both strategy
// packages can import it without an import cycle back to the façade.
package fkind

import (
	"math"
	"math/bits"

	"github.com/parsefloat/parsefloat/internal/pow10"
)

// Float is the set of target kinds: binary32 and binary64.
type Float interface{ ~float32 | ~float64 }

// Traits holds the constants spec.md §3 calls out for a target kind.
type Traits struct {
	MantissaBits    int // including the implicit leading bit: 53 or 24
	Bias            int
	MinExp          int // minimum unbiased exponent for normals
	MaxExp          int // maximum unbiased exponent for normals
	SubnormalExp    int // scale (power of 2) of a subnormal field's LSB
	ExactPow10Bound int
}

var traits64 = Traits{
	MantissaBits:    53,
	Bias:            1023,
	MinExp:          -1022,
	MaxExp:          1023,
	SubnormalExp:    -1074,
	ExactPow10Bound: pow10.MaxExactPow10(53),
}

var traits32 = Traits{
	MantissaBits:    24,
	Bias:            127,
	MinExp:          -126,
	MaxExp:          127,
	SubnormalExp:    -149,
	ExactPow10Bound: pow10.MaxExactPow10(24),
}

// Of returns the traits for F.
func Of[F Float]() Traits {
	var z F
	switch any(z).(type) {
	case float32:
		return traits32
	case float64:
		return traits64
	default:
		panic("parsefloat: unsupported float kind")
	}
}

// FromBits assembles F from a sign, biased exponent field, and a mantissa
// field (implicit bit already stripped).
func FromBits[F Float](neg bool, biasedExp int, field uint64) F {
	var z F
	switch any(z).(type) {
	case float32:
		b := uint32(biasedExp)<<23 | uint32(field)
		if neg {
			b |= 1 << 31
		}
		return any(math.Float32frombits(b)).(F)
	case float64:
		b := uint64(biasedExp)<<52 | field
		if neg {
			b |= 1 << 63
		}
		return any(math.Float64frombits(b)).(F)
	default:
		panic("parsefloat: unsupported float kind")
	}
}

func PosZero[F Float]() F { var z F; return z }

func PosInf[F Float]() F {
	var z F
	switch any(z).(type) {
	case float32:
		return any(float32(math.Inf(1))).(F)
	case float64:
		return any(math.Inf(1)).(F)
	default:
		panic("parsefloat: unsupported float kind")
	}
}

// roundShift rounds mant right by shift bits, round-half-to-even, and
// returns the shifted quotient. shift must be in [0, 64].
func roundShift(mant uint64, shift uint) uint64 {
	if shift == 0 {
		return mant
	}
	if shift >= 64 {
		if mant > 1<<63 {
			return 1
		}
		return 0 // exact tie or below: rounds to even (0)
	}
	q := mant >> shift
	rem := mant & (uint64(1)<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// Round rounds the value mant*2**exp (mant nonzero, its leading bit
// position derived from bits.Len64 so callers may pass perturbed
// mantissas that have lost normalization) to t's precision using
// round-half-to-even. It returns the stored mantissa field (implicit bit
// stripped for a normal result), the biased exponent to store (0 for a
// subnormal or zero result), and whether the value overflows to infinity.
//
// The moderate path (extfloat) folds its final subnormal/overflow handling
// through this routine. The slow path (Algorithm M) does not call it: it
// rounds its exact p-bit quotient plus remainder and applies its own
// subnormal/overflow checks in internal/slow.
//
// Precondition: mant's bit length is at least t.MantissaBits (true for
// its caller: extfloat's combined mantissas are always 64 bits wide,
// and perturbing by the tiny error bound used to test rounding stability
// never drops below that for any precision this package targets).
func (t Traits) Round(mant uint64, exp int32) (field uint64, biasedExp int, isInf bool) {
	lbits := bits.Len64(mant)
	lead := int(exp) + lbits - 1

	if lead >= t.MinExp {
		shift := uint(lbits - t.MantissaBits)
		q := roundShift(mant, shift)
		b := lead
		if q == uint64(1)<<uint(t.MantissaBits) {
			b++
		}
		if b > t.MaxExp {
			return 0, 0, true
		}
		mask := uint64(1)<<uint(t.MantissaBits-1) - 1
		return q & mask, b + t.Bias, false
	}

	// Subnormal: q is anchored to the fixed scale 2**SubnormalExp
	// regardless of mant's own bit length.
	shift := t.SubnormalExp - int(exp)
	if shift < 0 || shift > 64 {
		return 0, 0, false // decisively below the smallest subnormal
	}
	q := roundShift(mant, uint(shift))
	if q == uint64(1)<<uint(t.MantissaBits-1) {
		return 0, 1, false // rounded up into the smallest normal
	}
	return q, 0, false
}
