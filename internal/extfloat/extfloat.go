// Package extfloat implements the moderate, Bellerophon conversion path
// (spec.md §4.3): an extended-precision 64-bit mantissa is multiplied by a
// normalized power-of-ten approximation, and the result is rounded to the
// target precision only when a tracked error bound proves the rounding is
// unambiguous.
package extfloat

import (
	"math/bits"

	"github.com/parsefloat/parsefloat/internal/fkind"
	"github.com/parsefloat/parsefloat/internal/pow10"
)

// Float is a normalized extended-precision value: mantissa * 2**exp, with
// Mant's top bit set whenever Mant != 0.
type Float struct {
	Mant uint64
	Exp  int32
}

// Outcome is the result of attempting the moderate path on one input.
type Outcome struct {
	Field      uint64 // stored mantissa field, valid only if Conclusive
	BiasedExp  int    // biased exponent to store, valid only if Conclusive
	Inf        bool   // value overflows to +Inf, valid only if Conclusive
	Conclusive bool   // false means: escalate to the slow path
}

// errorUnits is the number of whole-ULP (at the 64-bit mantissa's own
// scale) error units contributed by one normalized-mantissa multiply: one
// for the table approximation's own rounding, one for renormalizing the
// 128-bit product down to 64 bits. This is the classic Bellerophon bound
// (spec §4.3 step 4: "at most a few half-ULPs... depending on how many
// approximations compounded"); tracking it in whole units instead of
// half-units only ever makes Try() more conservative, never incorrect.
const errorUnits = 2

// truncatedPenalty is the extra error charged when the input mantissa was
// already truncated by the small-integer accumulator (spec §4.1): digits
// beyond the 64-bit accumulator could tip a near-halfway case either way.
const truncatedPenalty = 1

// normalize left-shifts m until its top bit is set, returning the
// normalized value and its exponent such that normalized*2**exp == m.
func normalize(m uint64) Float {
	s := bits.LeadingZeros64(m)
	return Float{Mant: m << uint(s), Exp: int32(-s)}
}

// mulPow10 multiplies f by the normalized approximation of 10**exp10,
// reusing the same 128-bit-product-renormalize math the power-of-ten
// table uses to fold its own strided entries together (pow10.Mul).
func (f Float) mulPow10(e pow10.Entry) Float {
	r := pow10.Mul(pow10.Entry{Mant: f.Mant, Exp2: f.Exp}, e)
	return Float{Mant: r.Mant, Exp: r.Exp2}
}

// perturb returns f's mantissa offset by err whole ULPs (at f's own
// scale), saturating the binary exponent up by one on mantissa overflow
// instead of wrapping. err is tiny (a handful of units) relative to a
// mantissa that is always >= 2**63, so it can only ever reduce bit 63 of
// a "down" perturbation, never underflow past zero.
func (f Float) perturb(err uint64, down bool) (uint64, int32) {
	if down {
		return f.Mant - err, f.Exp
	}
	sum, carry := bits.Add64(f.Mant, err, 0)
	if carry != 0 {
		return sum>>1 | 1<<63, f.Exp + 1
	}
	return sum, f.Exp
}

// Try attempts the moderate path for a parsed decimal significand
// mantissa * 10**exp10 against the target kind t. truncated reports
// whether the digit accumulator dropped trailing digits (spec §4.1).
func Try(t fkind.Traits, mantissa uint64, exp10 int, truncated bool) Outcome {
	entry, ok := pow10.Lookup(exp10)
	if !ok {
		if exp10 > 0 {
			return Outcome{Inf: true, Conclusive: true}
		}
		return Outcome{Conclusive: true} // decisive underflow to +0
	}

	err := uint64(errorUnits)
	if truncated {
		err += truncatedPenalty
	}

	combined := normalize(mantissa).mulPow10(entry)
	upper := combined
	if truncated {
		// The dropped digits put the true significand strictly between
		// mantissa and mantissa+1, so the upper bound starts from the latter.
		upper = normalize(mantissa + 1).mulPow10(entry)
	}

	loMant, loExp := combined.perturb(err, true)
	hiMant, hiExp := upper.perturb(err, false)

	loField, loBiased, loInf := t.Round(loMant, loExp)
	midField, midBiased, midInf := t.Round(combined.Mant, combined.Exp)
	hiField, hiBiased, hiInf := t.Round(hiMant, hiExp)

	if loField != midField || loBiased != midBiased || loInf != midInf ||
		hiField != midField || hiBiased != midBiased || hiInf != midInf {
		return Outcome{Conclusive: false}
	}
	return Outcome{Field: midField, BiasedExp: midBiased, Inf: midInf, Conclusive: true}
}
