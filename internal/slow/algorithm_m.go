// Package slow implements Algorithm M (Steele & White), the exact
// big-integer slow path (spec.md §4.5) invoked whenever the moderate path
// (internal/extfloat) is inconclusive. It produces the unique correctly
// rounded result by exact rational comparison instead of an error-bounded
// approximation.
package slow

import (
	"github.com/parsefloat/parsefloat/internal/bignum"
	"github.com/parsefloat/parsefloat/internal/fkind"
)

// Convert computes the correctly-rounded binary representation of d*10^e
// for the target kind t, where d is the FULL decimal significand (every
// digit the caller parsed, not truncated to a 64-bit accumulator). It
// returns the stored mantissa field, the biased exponent to store (0 for
// subnormal or zero), and whether the value overflows to infinity.
func Convert(t fkind.Traits, d *bignum.Dec, e int) (field uint64, biasedExp int, isInf bool) {
	var num, den bignum.Uint
	d.ToUint(&num)
	if e >= 0 {
		num.MulPow5(&num, uint(e))
		den.SetUint64(1)
	} else {
		den.SetUint64(1)
		den.MulPow5(&den, uint(-e))
	}
	return convertRatio(t, &num, &den, e)
}

// hi64 returns the top 64 bits of z's value, ignoring the sticky flag:
// used only as a cheap comparison for the normalization head start in
// convertRatio, never for a decisive rounding outcome.
func hi64(z *bignum.Uint) uint64 {
	hi, _ := z.Hi64()
	return hi
}

// convertRatio performs the normalize-then-extract-p-bits procedure of
// spec §4.5 steps 3-5 on the exact rational num/den * 2**e.
func convertRatio(t fkind.Traits, num, den *bignum.Uint, e int) (field uint64, biasedExp int, isInf bool) {
	if num.IsZero() {
		return 0, 0, false
	}

	n, d := new(bignum.Uint).Set(num), new(bignum.Uint).Set(den)

	// Initial exponent estimate (spec §4.5 step 1): n and d can differ by
	// thousands of bits (e.g. 5e-324 against 1e308), so normalizing one bit
	// at a time from lead==0 is the wrong shape for that gap. BitLen gives
	// the shift that brings both operands to matching bit length in a
	// single Shl; Hi64's top-64-bit window then settles the at-most-one-bit
	// slack a bit-length estimate can leave, without reconstructing a full
	// shifted copy the way the exact loops below would. Both are only ever
	// a head start: the invariant value == (n/d)*2**lead is maintained the
	// same way at every step, and the loops below still run to fix
	// whatever the estimate gets wrong, so an imprecise guess here costs at
	// most a couple of wasted iterations, never correctness.
	lead := n.BitLen() - d.BitLen()
	switch {
	case lead > 0:
		d.Shl(d, uint(lead))
	case lead < 0:
		n.Shl(n, uint(-lead))
	}
	if nHi, dHi := hi64(n), hi64(d); nHi < dHi {
		n.Shl(n, 1)
		lead--
	} else if nHi>>1 >= dHi {
		d.Shl(d, 1)
		lead++
	}

	// Normalize n/d into [1, 2) by repeated doubling, tracking the net
	// exponent shift in lead: throughout, the invariant value ==
	// (n/d)*2**lead holds exactly, since every step doubles one side and
	// adjusts lead to compensate.
	for n.Cmp(d) < 0 {
		n.Shl(n, 1)
		lead--
	}
	for {
		twiceD := new(bignum.Uint).Shl(d, 1)
		if n.Cmp(twiceD) < 0 {
			break
		}
		d = twiceD
		lead++
	}

	trueLead := lead + e
	if trueLead > t.MaxExp {
		return 0, 0, true
	}

	p := t.MantissaBits
	subnormal := false
	if trueLead < t.MinExp {
		drop := t.MinExp - trueLead
		if drop > p {
			return 0, 0, false // decisively underflows to zero
		}
		p -= drop
		subnormal = true
	}

	// Extract p quotient bits by restoring binary division: n/d starts in
	// [1, 2) so the leading bit is always 1; each step doubles the
	// remainder for the next bit. After p iterations, n holds exactly
	// 2*remainder relative to d, which is what spec §4.5 step 4 compares
	// against den for the round-half-to-even decision.
	var bits uint64
	for i := 0; i < p; i++ {
		bits <<= 1
		if n.Cmp(d) >= 0 {
			n.Sub(n, d)
			bits |= 1
		}
		n.Shl(n, 1)
	}
	cmp := n.Cmp(d)
	if cmp > 0 || (cmp == 0 && bits&1 == 1) {
		bits++
	}

	if !subnormal {
		if bits == uint64(1)<<uint(p) {
			trueLead++
			if trueLead > t.MaxExp {
				return 0, 0, true
			}
		}
		mask := uint64(1)<<uint(t.MantissaBits-1) - 1
		return bits & mask, trueLead + t.Bias, false
	}
	if bits == uint64(1)<<uint(t.MantissaBits-1) {
		return 0, 1, false // rounded up into the smallest normal
	}
	return bits, 0, false
}
