// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

const (
	// _W * log10(2) decimal digits per word: 9 per 32-bit word, 19 per
	// 64-bit word.
	_DW = _W * 30103 / 100000
	// Decimal base for a word: 1e9 for 32-bit words, 1e19 for 64-bit words.
	_DB = 9999999998000000000*(_DW/19) + 1000000000*(_DW/9)
)

var decPow10 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

func decPow(n uint) Word { return Word(decPow10[n]) }

// Dec is a non-negative arbitrary-precision decimal integer stored in
// base-10^9 (32-bit words) or base-10^19 (64-bit words) limbs, little
// endian, with no trailing zero limbs. It is the companion type that
// absorbs a parsed digit stream verbatim (no base conversion) before the
// slow path converts it into a Uint to scale and compare in binary.
//
// Dec shares its storage policy (growable vs. fixed-capacity) with Uint,
// through its own analogous split; see dec_alloc.go / dec_noalloc.go.

// IsZero reports whether z == 0.
func (z *Dec) IsZero() bool { return len(z.limbs()) == 0 }

// AppendDigit appends one decimal digit (0-9) as the new least-significant
// digit: z = z*10 + d. This is the slow, one-digit-at-a-time primitive;
// AppendDigits below amortizes it over _DW digits at a time the way the
// teacher's own digit scanner does (dec_conv.go).
func (z *Dec) AppendDigit(d uint8) {
	w := z.limbs()
	c := mulAdd10VWW(w, w, 10, Word(d))
	if c != 0 {
		w2 := z.setLen(len(w) + 1)
		w2[len(w)] = c
	}
}

// mulAdd10VWW sets z = x*y + r (r a single "digit group" carry-in, 0 <= r <
// _DB) in base _DB and returns the resulting carry, mirroring the teacher's
// mulAdd10VWW.
func mulAdd10VWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		lo, cc := bits.Add(lo, uint(c), 0)
		hi += cc
		c, z[i] = div10W(Word(hi), Word(lo))
	}
	return
}

// div10W returns q, r such that n1*2**_W + n0 == q*_DB + r, 0 <= r < _DB.
// Unlike the teacher's Granlund-Montgomery version, this one favors
// correctness and clarity over speed: it runs once per digit group during
// parsing, never in a hot numeric loop.
func div10W(n1, n0 Word) (q, r Word) {
	if n1 == 0 {
		return n0 / Word(_DB), n0 % Word(_DB)
	}
	qq, rr := bits.Div(uint(n1), uint(n0), uint(_DB))
	return Word(qq), Word(rr)
}

// PushGroup folds in a group of up to _DW decimal digits packed into v (with
// vlen the digit count, vlen <= _DW), the way the teacher's scan() collects
// digits in groups before a single mulAdd10VWW call.
func (z *Dec) PushGroup(v uint64, vlen int) {
	w := z.limbs()
	c := mulAdd10VWW(w, w, decPow(uint(vlen)), Word(v))
	if c != 0 {
		w2 := z.setLen(len(w) + 1)
		w2[len(w)] = c
	}
}

// AppendDigits appends a run of ASCII decimal digit bytes ('0'-'9'), most
// significant first, folding it in _DW digits at a time via PushGroup
// instead of one digit at a time, the way the teacher's own scan() batches
// its digit groups before each limb-arithmetic call.
func (z *Dec) AppendDigits(digits []byte) {
	for len(digits) > 0 {
		n := len(digits)
		if n > _DW {
			n = _DW
		}
		var v uint64
		for _, b := range digits[:n] {
			v = v*10 + uint64(b-'0')
		}
		z.PushGroup(v, n)
		digits = digits[n:]
	}
}
