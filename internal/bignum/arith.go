package bignum

import "math/bits"

// arithmetic primitives on plain limb slices, base 2**_W. The shapes mirror
// the teacher's decimal-base primitives (add10VV, shl10VU, mulAdd10VWW, ...)
// one level down: base 2**_W needs no Granlund-Montgomery magic-number
// division, since bits.Div/bits.Mul already operate natively in that base.

// addVV sets z = x + y for equal-length x, y and returns the carry (0 or 1).
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(x[i], y[i], c)
		z[i] = zi
		c = cc
	}
	return c
}

// subVV sets z = x - y for equal-length x, y and returns the borrow (0 or 1).
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(x[i], y[i], c)
		z[i] = zi
		c = cc
	}
	return c
}

// addVW adds y to x, propagating the carry. The resulting carry is 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Add(x[i], c, 0)
		z[i] = zi
		c = cc
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return
}

// shlVU sets z = x << s for 0 <= s < _W and returns the bits shifted out of
// the top.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	var carry Word
	for i := 0; i < len(x) && i < len(z); i++ {
		w := x[i]
		z[i] = w<<s | carry
		carry = w >> (_W - s)
	}
	return carry
}

// mulAddVWW sets z = x*y + r (r is a single-word carry-in) and returns the
// resulting carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(x[i], y)
		lo2, cc := bits.Add(lo, c, 0)
		z[i] = lo2
		c = hi + cc
	}
	return
}

// addMulVVW sets z += x*y and returns the resulting carry.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(x[i], y)
		lo, cc := bits.Add(lo, z[i], 0)
		hi += cc
		lo, cc = bits.Add(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return
}

// divWVW divides (xn:x) by y in place into z and returns the remainder.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = bits.Div(r, x[i], y)
	}
	return
}

// cmpVV compares x and y as big-endian-ordered magnitudes stored
// little-endian; both must be normalized (no trailing zero limbs).
func cmpVV(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
