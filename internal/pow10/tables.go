// Package pow10 supplies the power-of-ten tables used by the fast and
// moderate conversion paths: exact float64/float32 powers of ten for the
// fast path (spec §4.2), and normalized 64-bit mantissa/binary-exponent
// approximations of 10^k for the moderate, Bellerophon path (spec §4.3).
//
// The approximation table is generated at init time from math/big rather
// than hand-transcribed, so its accuracy is provable from the generation
// code instead of from a few thousand copied magic numbers.
package pow10

import (
	"math/big"
	"math/bits"
)

// Entry is a normalized 64-bit mantissa approximation of 10^k: the
// represented value is Mant * 2**Exp2, with Mant's top bit set.
type Entry struct {
	Mant uint64
	Exp2 int32
}

// Float64Exact holds 10^0..10^22, each exactly representable as a float64;
// used by the fast path (spec §4.2: exact-pow10 bound of 22 for binary64).
var Float64Exact = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// Float32Exact holds 10^0..10^10, each exactly representable as a float32;
// used by the fast path (spec §4.2: exact-pow10 bound of 10 for binary32).
var Float32Exact = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// MaxExactPow10 returns the largest decimal exponent for which 10^n is
// exactly representable in the given float kind's mantissa (22 for
// binary64, 10 for binary32).
func MaxExactPow10(mantissaBits int) int {
	if mantissaBits <= 24 {
		return len(Float32Exact) - 1
	}
	return len(Float64Exact) - 1
}

// stride is the spacing of the strided approximation table (spec §9 open
// question (a), resolved in favor of the strided layout: a smaller table at
// the cost of one extra 64x64 multiply per lookup to fold in the
// small-multiplier table below).
const stride = 8

// smallMul holds normalized approximations of 10^0..10^(stride-1).
var smallMul [stride]Entry

// strided holds normalized approximations of 10^(stride*q) for q in
// [minQ, maxQ], indexed by q-minQ. The range covers decimal exponents
// [-352, 352], comfortably beyond the +/-342ish overflow/underflow cutoff
// binary64 ever needs (spec §4.3: "if the magnitude of the decimal exponent
// exceeds the table range, the value is certainly overflow or underflow").
const (
	minQ = -44
	maxQ = 44
)

var strided [maxQ - minQ + 1]Entry

func init() {
	for r := 0; r < stride; r++ {
		smallMul[r] = computeEntry(r)
	}
	for q := minQ; q <= maxQ; q++ {
		strided[q-minQ] = computeEntry(stride * q)
	}
}

// MinDecimalExp10 and MaxDecimalExp10 bound the decimal exponents the
// moderate path's table can resolve directly; outside this range the value
// is decisively zero or infinite without consulting the slow path.
const (
	MinDecimalExp10 = stride * minQ
	MaxDecimalExp10 = stride*(maxQ+1) - 1 // the small table adds up to stride-1
)

// Lookup returns the normalized 64-bit approximation of 10^exp10 and
// whether exp10 is within the covered range.
func Lookup(exp10 int) (Entry, bool) {
	if exp10 < MinDecimalExp10 || exp10 > MaxDecimalExp10 {
		return Entry{}, false
	}
	q := exp10 / stride
	r := exp10 - stride*q
	if r < 0 {
		r += stride
		q--
	}
	if q < minQ || q > maxQ {
		return Entry{}, false
	}
	if r == 0 {
		return strided[q-minQ], true
	}
	return Mul(strided[q-minQ], smallMul[r]), true
}

// Mul multiplies two normalized Entry approximations, renormalizing the
// 128-bit product down to 64 bits (spec §4.3 step 3: "retain the high 64
// bits, renormalize (possibly by 1 bit), and sum binary exponents"). It is
// exported so the moderate path can reuse the identical combine math when
// multiplying the input mantissa by a table entry.
func Mul(a, b Entry) Entry {
	hi, lo := bits.Mul64(a.Mant, b.Mant)
	exp2 := a.Exp2 + b.Exp2 + 64
	// round to nearest using the top bit of the discarded low word
	if lo&(1<<63) != 0 {
		var carry uint64
		hi, carry = bits.Add64(hi, 1, 0)
		if carry != 0 {
			hi = 1 << 63
			exp2++
		}
	}
	if hi&(1<<63) == 0 {
		hi <<= 1
		exp2--
	}
	return Entry{Mant: hi, Exp2: exp2}
}

// computeEntry computes the correctly-rounded normalized 64-bit mantissa
// approximation of 10^exp10 using math/big at high working precision,
// following the teacher's own pattern of deriving constants via math/big
// at init time (see its pow2/Pi computations) rather than transcribing
// tables by hand.
func computeEntry(exp10 int) Entry {
	const workPrec = 256
	f := new(big.Float).SetPrec(workPrec)
	if exp10 >= 0 {
		bi := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp10)), nil)
		f.SetInt(bi)
	} else {
		bi := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp10)), nil)
		num := new(big.Float).SetPrec(workPrec).SetInt(bi)
		f.SetPrec(workPrec).Quo(big.NewFloat(1).SetPrec(workPrec), num)
	}

	var mant big.Float
	mant.SetPrec(workPrec)
	exp := f.MantExp(&mant) // 0.5 <= mant < 1, f == mant * 2**exp

	mant.SetMantExp(&mant, 64) // mant in [2**63, 2**64)
	// Uint64 truncates toward zero, so add one half first to round to
	// nearest.
	mant.Add(&mant, new(big.Float).SetPrec(workPrec).SetFloat64(0.5))
	var mi uint64
	if mant.MantExp(nil) > 64 {
		// Rounding pushed mant to 2**64 exactly; renormalize.
		mi = 1 << 63
		exp++
	} else {
		mi, _ = mant.Uint64()
	}
	return Entry{Mant: mi, Exp2: int32(exp - 64)}
}
