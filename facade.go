package parsefloat

import (
	"fmt"
	"io"

	"github.com/parsefloat/parsefloat/internal/bignum"
	"github.com/parsefloat/parsefloat/internal/extfloat"
	"github.com/parsefloat/parsefloat/internal/fkind"
	"github.com/parsefloat/parsefloat/internal/slow"
)

// ParseFloat converts the decimal significand formed by concatenating
// integer and fraction (ASCII '0'..'9' digit slices, already stripped of
// any sign, leading/trailing zeros the caller doesn't want counted, and
// the decimal point itself) scaled by 10**exponent into the nearest
// representable value of F. exponent must already have the fraction
// digit count folded in by the caller, per spec.md §6: it is the power of
// ten applied to integer++fraction as if concatenated with no point.
//
// Sign is not handled here: the caller negates the result itself, per
// spec.md §4.6.
func ParseFloat[F Float](integer, fraction []byte, exponent int32) F {
	// buildParsedNumber takes the exponent relative to the integer digits
	// and subtracts the fraction digits it consumes itself, so the fraction
	// digit count folded in by the caller is added back here.
	pn := buildParsedNumber(integer, fraction, exponent+int32(len(fraction)))
	if pn.Mantissa == 0 {
		return fkind.PosZero[F]()
	}

	if v, ok := tryFastPath[F](pn.Mantissa, pn.Exponent, pn.Truncated); ok {
		recordResolved(strategyFast)
		return v
	}

	t := fkind.Of[F]()
	if out := extfloat.Try(t, pn.Mantissa, int(pn.Exponent), pn.Truncated); out.Conclusive {
		recordResolved(strategyModerate)
		if out.Inf {
			return fkind.PosInf[F]()
		}
		return fkind.FromBits[F](false, out.BiasedExp, out.Field)
	}

	recordResolved(strategySlow)
	return slowPath[F](t, integer, fraction, exponent)
}

// CreateFloat converts an already-built (mantissa, exponent, truncated)
// triple directly, for callers that ran their own digit accumulator
// instead of calling ParseFloat with raw digit slices. When escalation to
// the slow path is needed and truncated is true, the original digits are
// no longer available, so the slow path runs against mantissa itself
// (exact when !truncated, best-effort otherwise — the same limitation any
// saturating accumulator has once its extra digits are gone).
func CreateFloat[F Float](mantissa uint64, exponent int32, truncated bool) F {
	if mantissa == 0 {
		return fkind.PosZero[F]()
	}

	if v, ok := tryFastPath[F](mantissa, exponent, truncated); ok {
		recordResolved(strategyFast)
		return v
	}

	t := fkind.Of[F]()
	if out := extfloat.Try(t, mantissa, int(exponent), truncated); out.Conclusive {
		recordResolved(strategyModerate)
		if out.Inf {
			return fkind.PosInf[F]()
		}
		return fkind.FromBits[F](false, out.BiasedExp, out.Field)
	}

	recordResolved(strategySlow)
	var d bignum.Dec
	appendDecimalDigits(&d, mantissa)
	field, biasedExp, isInf := slow.Convert(t, &d, int(exponent))
	if isInf {
		return fkind.PosInf[F]()
	}
	return fkind.FromBits[F](false, biasedExp, field)
}

// ParseFloatReader is the streaming counterpart of ParseFloat for callers
// tokenizing from an io.ByteScanner instead of an already-materialized
// slice (spec.md §9 supplemented feature, grounded in the teacher's own
// io.ByteScanner-based (*Decimal).scan). Each of integer and fraction is
// read to its natural end (io.EOF); any other read error is returned
// as-is, and a byte outside '0'..'9' yields an error naming that byte.
func ParseFloatReader[F Float](integer, fraction io.ByteScanner, exponent int32) (F, error) {
	intDigits, err := scanDigits(integer)
	if err != nil {
		var zero F
		return zero, err
	}
	fracDigits, err := scanDigits(fraction)
	if err != nil {
		var zero F
		return zero, err
	}
	return ParseFloat[F](intDigits, fracDigits, exponent), nil
}

// scanDigits reads ASCII decimal digits from r until io.EOF.
func scanDigits(r io.ByteScanner) ([]byte, error) {
	var digits []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return digits, nil
		}
		if err != nil {
			return nil, err
		}
		if b < '0' || b > '9' {
			return nil, fmt.Errorf("parsefloat: invalid digit byte %q", b)
		}
		digits = append(digits, b)
	}
}

// slowPath builds the full, untruncated decimal significand from the
// original digit slices (spec.md §4.5: "let d be the full decimal
// significand, every significant digit, not truncated") and delegates to
// Algorithm M.
func slowPath[F Float](t fkind.Traits, integer, fraction []byte, exponent int32) F {
	var d bignum.Dec
	d.AppendDigits(integer)
	d.AppendDigits(fraction)
	field, biasedExp, isInf := slow.Convert(t, &d, int(exponent))
	if isInf {
		return fkind.PosInf[F]()
	}
	return fkind.FromBits[F](false, biasedExp, field)
}

// appendDecimalDigits appends v's base-10 digits, most significant first.
func appendDecimalDigits(d *bignum.Dec, v uint64) {
	if v == 0 {
		return
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte(v%10) + '0'
		v /= 10
	}
	d.AppendDigits(buf[i:])
}
