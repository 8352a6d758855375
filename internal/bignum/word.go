// Package bignum implements the big-integer arena and its base-10^9
// big-decimal companion used by the slow, exact Algorithm M conversion path.
//
// Low-level word arithmetic is laid out the way the teacher package lays out
// its own decimal word arithmetic (separate files for the primitive ops, the
// higher-level slice type, and a build-tag-selected storage policy): here the
// base is 2**_W instead of 10**_DW, since the arena is a binary integer, not
// a decimal one.
package bignum

import "math/bits"

// Word is a single limb of a Uint or Dec value.
type Word = uint

const (
	_W = bits.UintSize // word size in bits
)

// snapshotLimbs bounds the stack-allocated scratch buffers used by
// operations (Shl) that must read x's limbs while writing into
// possibly-aliased z storage. It covers the largest value the noalloc
// build can hold (see maxBits in uint_noalloc.go) on either word size
// without allocating, so that snapshotting never defeats the noalloc build;
// the growable default build can exceed it, and Shl then copies to the heap.
const snapshotLimbs = 8192/_W + 1
