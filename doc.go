// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package parsefloat converts a decimal significand and exponent into the
nearest representable binary32 or binary64 value.

Callers do not hand this package a string: they hand it the two digit
runs a lexer has already split out (the integer part and the fraction
part, each as a slice of ASCII '0'..'9' bytes) plus the base-10 exponent
that applies to the two runs concatenated as if there were no decimal
point. Sign is the caller's concern; this package only ever produces a
non-negative result, which the caller negates itself.

    v := parsefloat.ParseFloat[float64]([]byte("123"), []byte("456"), -3)
    // v == 123.456

Three strategies resolve the conversion, in increasing order of cost and
decreasing order of how often they fire:

  - a fast path, for inputs whose significand and power of ten are both
    exactly representable in the target float kind, settled with a single
    native multiply or divide;
  - a moderate path, which multiplies an extended-precision mantissa by a
    tabulated power-of-ten approximation and accepts the result only when
    a tracked error bound proves the rounding unambiguous;
  - a slow path (Algorithm M), which falls back to exact arbitrary
    precision arithmetic and is always correct, used only when the first
    two cannot prove themselves.

ParseFloat is pure and reentrant: the same inputs always produce the same
output, and concurrent callers need no coordination. See CreateFloat for
callers that have already reduced their digits to a (mantissa, exponent,
truncated) triple of their own, and ParseFloatReader for callers reading
digits from an io.ByteScanner instead of an in-memory slice.
*/
package parsefloat
