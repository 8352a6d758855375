package bignum

import "math/bits"

// SetUint64 sets z to x and returns z.
func (z *Uint) SetUint64(x uint64) *Uint {
	if _W == 64 {
		w := z.setLen(1)
		w[0] = Word(x)
		z.norm()
		return z
	}
	// _W == 32: x may need two limbs.
	w := z.setLen(2)
	w[0] = Word(x)
	w[1] = Word(x >> 32)
	z.norm()
	return z
}

// IsZero reports whether z == 0.
func (z *Uint) IsZero() bool { return len(z.limbs()) == 0 }

// BitLen returns the number of bits required to represent z, or 0 if z == 0.
func (z *Uint) BitLen() int {
	w := z.limbs()
	n := len(w)
	if n == 0 {
		return 0
	}
	return (n-1)*_W + bits.Len(uint(w[n-1]))
}

// Cmp performs a three-way comparison: -1 if z<x, 0 if z==x, 1 if z>x.
func (z *Uint) Cmp(x *Uint) int {
	return cmpVV(z.limbs(), x.limbs())
}

// Set sets z = x and returns z.
func (z *Uint) Set(x *Uint) *Uint {
	xw := x.limbs()
	w := z.setLen(len(xw))
	copy(w, xw)
	z.norm()
	return z
}

// Add sets z = x + y and returns z.
func (z *Uint) Add(x, y *Uint) *Uint {
	xw, yw := x.limbs(), y.limbs()
	if len(xw) < len(yw) {
		xw, yw = yw, xw
	}
	w := z.setLen(len(xw) + 1)
	c := addVV(w[:len(yw)], xw[:len(yw)], yw)
	if len(xw) > len(yw) {
		c = addVW(w[len(yw):len(xw)], xw[len(yw):], c)
	}
	w[len(xw)] = c
	z.norm()
	return z
}

// Sub sets z = x - y and returns z. The caller must ensure x >= y; behavior
// is undefined (and will not panic, matching the arena's total-function
// contract) otherwise.
func (z *Uint) Sub(x, y *Uint) *Uint {
	xw, yw := x.limbs(), y.limbs()
	w := z.setLen(len(xw))
	c := subVV(w[:len(yw)], xw[:len(yw)], yw)
	if len(xw) > len(yw) {
		// propagate the borrow through the remaining high limbs
		for i := len(yw); i < len(xw); i++ {
			d, cc := bits.Sub(xw[i], c, 0)
			w[i] = d
			c = cc
		}
	}
	z.norm()
	return z
}

// MulSmall sets z = x*y for a single-limb multiplier y and returns z.
func (z *Uint) MulSmall(x *Uint, y Word) *Uint {
	xw := x.limbs()
	w := z.setLen(len(xw) + 1)
	c := mulAddVWW(w[:len(xw)], xw, y, 0)
	w[len(xw)] = c
	z.norm()
	return z
}

// Shl sets z = x << s and returns z. x and z may alias.
func (z *Uint) Shl(x *Uint, s uint) *Uint {
	xw := x.limbs()
	if len(xw) == 0 {
		z.reset()
		return z
	}
	// Snapshot x's limbs first: when x and z alias, a word-level shift
	// (words > 0) writes into indices that overlap the still-unread source
	// limbs, so the source must not be read directly out of z's storage.
	// A stack buffer keeps this allocation-free under the noalloc build
	// tag; a longer x (possible only in the growable default build) is
	// copied to the heap instead.
	var buf [snapshotLimbs]Word
	var src []Word
	if len(xw) <= len(buf) {
		src = buf[:copy(buf[:], xw)]
	} else {
		src = append([]Word(nil), xw...)
	}
	words, bits_ := s/_W, s%_W
	n := uint(len(src)) + words
	w := z.setLen(int(n) + 1)
	for i := uint(0); i < words; i++ {
		w[i] = 0
	}
	var carry Word
	if bits_ == 0 {
		copy(w[words:], src)
	} else {
		carry = shlVU(w[words:words+uint(len(src))], src, bits_)
	}
	w[n] = carry
	z.norm()
	return z
}

// maxPow5 is the largest power of 5 that fits in a Word (5**27 on 64-bit
// platforms, 5**13 on 32-bit ones), used to chunk MulPow5 into single-limb
// multiplications the same way Dec.AppendDigits chunks its digits into
// _DW-digit groups scaled via decPow.
const (
	maxPow5Exp64      = 27
	maxPow5      Word = 7450580596923828125
	maxPow5Exp32      = 13
	maxPow5_32   Word = 1220703125
)

// MulPow5 sets z = x * 5**exp and returns z.
func (z *Uint) MulPow5(x *Uint, exp uint) *Uint {
	z.Set(x)
	chunk, p := uint(maxPow5Exp64), maxPow5
	if _W == 32 {
		chunk, p = uint(maxPow5Exp32), maxPow5_32
	}
	for exp >= chunk {
		z.MulSmall(z, p)
		exp -= chunk
	}
	if exp > 0 {
		m := Word(1)
		for i := uint(0); i < exp; i++ {
			m *= 5
		}
		z.MulSmall(z, m)
	}
	return z
}

// Hi64 returns the top 64 bits of z (as if z were shifted right so that its
// highest set bit is bit 63) along with a sticky flag that is true if any
// bit below that window is set.
func (z *Uint) Hi64() (hi uint64, sticky bool) {
	bl := z.BitLen()
	if bl == 0 {
		return 0, false
	}
	if bl <= 64 {
		return z.toUint64Lo() << uint(64-bl), false
	}
	shift := uint(bl - 64)
	hi = z.hiBitsAfterShift(shift)
	sticky = z.nonZeroBelow(shift)
	return hi, sticky
}

// toUint64Lo returns z's value as a uint64, valid only when BitLen() <= 64.
func (z *Uint) toUint64Lo() uint64 {
	w := z.limbs()
	switch _W {
	case 64:
		if len(w) == 0 {
			return 0
		}
		return uint64(w[0])
	default: // 32
		var v uint64
		for i := len(w) - 1; i >= 0; i-- {
			v = v<<32 | uint64(w[i])
		}
		return v
	}
}

// hiBitsAfterShift returns the 64 bits of z starting at bit position shift.
func (z *Uint) hiBitsAfterShift(shift uint) uint64 {
	var t Uint
	t.Shr(z, shift)
	return t.toUint64Lo()
}

// nonZeroBelow reports whether z has any nonzero bit in [0, shift).
func (z *Uint) nonZeroBelow(shift uint) bool {
	words, bitsIn := shift/_W, shift%_W
	w := z.limbs()
	for i := uint(0); i < words && i < uint(len(w)); i++ {
		if w[i] != 0 {
			return true
		}
	}
	if bitsIn > 0 && words < uint(len(w)) {
		mask := Word(1)<<bitsIn - 1
		if w[words]&mask != 0 {
			return true
		}
	}
	return false
}

// Shr sets z = x >> s (logical right shift, discarding low bits) and
// returns z.
func (z *Uint) Shr(x *Uint, s uint) *Uint {
	xw := x.limbs()
	words, bitsOut := s/_W, s%_W
	if words >= uint(len(xw)) {
		z.reset()
		return z
	}
	src := xw[words:]
	w := z.setLen(len(src))
	if bitsOut == 0 {
		copy(w, src)
	} else {
		var carry Word
		for i := len(src) - 1; i >= 0; i-- {
			v := src[i]
			w[i] = v>>bitsOut | carry
			carry = v << (_W - bitsOut)
		}
	}
	z.norm()
	return z
}
