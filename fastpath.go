package parsefloat

import "github.com/parsefloat/parsefloat/internal/pow10"

// fastPath64 implements spec §4.2 for binary64: when mantissa fits exactly
// in 53 bits and 10**exp10 is itself exactly representable, a single
// floating-point multiply or divide of two exact operands is already
// correctly rounded, so the result needs no further verification.
func fastPath64(mantissa uint64, exp10 int32) (float64, bool) {
	const mantissaBound = 1 << 53
	if mantissa > mantissaBound {
		return 0, false
	}
	bound := pow10.MaxExactPow10(53)
	e := int(exp10)
	if e >= 0 {
		if e > bound {
			return 0, false
		}
		return float64(mantissa) * pow10.Float64Exact[e], true
	}
	if -e > bound {
		return 0, false
	}
	return float64(mantissa) / pow10.Float64Exact[-e], true
}

// fastPath32 is fastPath64's binary32 counterpart (24-bit mantissa bound).
func fastPath32(mantissa uint64, exp10 int32) (float32, bool) {
	const mantissaBound = 1 << 24
	if mantissa > mantissaBound {
		return 0, false
	}
	bound := pow10.MaxExactPow10(24)
	e := int(exp10)
	if e >= 0 {
		if e > bound {
			return 0, false
		}
		return float32(mantissa) * pow10.Float32Exact[e], true
	}
	if -e > bound {
		return 0, false
	}
	return float32(mantissa) / pow10.Float32Exact[-e], true
}

// tryFastPath dispatches to the binary32 or binary64 fast path for F and
// reports whether it produced a conclusive result. truncated inputs never
// qualify: a dropped digit could always be the one that breaks exactness.
func tryFastPath[F Float](mantissa uint64, exp10 int32, truncated bool) (F, bool) {
	if truncated {
		return 0, false
	}
	var z F
	switch any(z).(type) {
	case float32:
		v, ok := fastPath32(mantissa, exp10)
		return any(v).(F), ok
	case float64:
		v, ok := fastPath64(mantissa, exp10)
		return any(v).(F), ok
	default:
		return 0, false
	}
}
