package parsefloat

// ParsedNumber is the output of the digit adapter (spec.md §3/§4.1):
// mantissa is a saturating 64-bit accumulation of the significant digits,
// exponent is the adjusted decimal exponent to apply to mantissa, and
// truncated reports whether at least one significant digit was dropped
// because the accumulator was already full.
type ParsedNumber struct {
	Mantissa  uint64
	Exponent  int32
	Truncated bool
}

// satThreshold is the largest mantissa value that can still absorb one
// more decimal digit without overflowing uint64 (spec §4.1: "mantissa <
// (2^64 − 9)/10").
const satThreshold = (^uint64(0) - 9) / 10

// buildParsedNumber implements spec §4.1: integer digits are walked first,
// then fraction digits, into a saturating 64-bit accumulator. Once
// saturated, remaining digits are not absorbed but are still counted to
// adjust the exponent and to detect truncation. Both digit slices must
// hold ASCII '0'..'9' bytes with leading/trailing zeros already stripped
// by the caller (empty slices are valid and denote an absent part).
func buildParsedNumber(integer, fraction []byte, exponent int32) ParsedNumber {
	var (
		mantissa    uint64
		saturated   bool
		truncated   bool
		intAfterSat int32
		fracConsumed int32
	)

	for _, b := range integer {
		d := b - '0'
		if !saturated && mantissa < satThreshold {
			mantissa = mantissa*10 + uint64(d)
			continue
		}
		saturated = true
		intAfterSat++
		if d != 0 {
			truncated = true
		}
	}
	for _, b := range fraction {
		d := b - '0'
		if !saturated && mantissa < satThreshold {
			mantissa = mantissa*10 + uint64(d)
			fracConsumed++
			continue
		}
		saturated = true
		if d != 0 {
			truncated = true
		}
	}

	return ParsedNumber{
		Mantissa:  mantissa,
		Exponent:  exponent + intAfterSat - fracConsumed,
		Truncated: truncated,
	}
}
