package parsefloat_test

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/parsefloat/parsefloat"
	"github.com/stretchr/testify/require"
)

// split separates a decimal literal "int.frac" (no sign, no exponent) into
// its digit runs, and parseOracle uses strconv as the independent
// correctly-rounded reference this package's own result must match.
func split(literal string) (integer, fraction []byte) {
	parts := strings.SplitN(literal, ".", 2)
	integer = []byte(parts[0])
	if len(parts) == 2 {
		fraction = []byte(parts[1])
	}
	return
}

func oracle64(t *testing.T, literal string, sciExp int32) float64 {
	t.Helper()
	s := fmt.Sprintf("%se%d", literal, sciExp)
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}

func TestParseFloatMatchesStrconvOracle(t *testing.T) {
	cases := []struct {
		literal string
		sciExp  int32
	}{
		{"1.2345", 0},
		{"1", 7},
		{"9007199254740993", 0},
		{"3.14159265358979", 0},
		{"1", 300},
		{"1", -300},
		{"123456789012345678901234567890", -10},
		{"0.1", 0},
		{"2.5", 0},
		{"123", -2},
	}
	for _, c := range cases {
		integer, fraction := split(c.literal)
		exponent := c.sciExp - int32(len(fraction))
		got := parsefloat.ParseFloat[float64](integer, fraction, exponent)
		want := oracle64(t, c.literal, c.sciExp)
		require.Equal(t, want, got, "literal=%s sciExp=%d", c.literal, c.sciExp)
	}
}

func TestParseFloatSpecLiterals(t *testing.T) {
	require.Equal(t, 1.2345, parsefloat.ParseFloat[float64]([]byte("1"), []byte("2345"), -4))
	require.Equal(t, 1.0e7, parsefloat.ParseFloat[float64]([]byte("1"), nil, 7))
	require.Equal(t, 5e-324, parsefloat.ParseFloat[float64](nil, []byte("5"), -324))
	require.True(t, math.IsInf(parsefloat.ParseFloat[float64]([]byte("1"), nil, 309), 1))
	require.Equal(t, 0.0, parsefloat.ParseFloat[float64]([]byte("1"), nil, -324))
	require.Equal(t, 9.007199254740992e15, parsefloat.ParseFloat[float64]([]byte("9007199254740993"), nil, 0))

	// The near-halfway subnormal-boundary scenario: integer "2", fraction
	// "22507385850720138", exponent -324. Checked against the strconv
	// oracle under this package's own exponent convention (exponent applies
	// to integer++fraction concatenated with no point, so the oracle's
	// scientific exponent is exponent+len(fraction)) rather than against
	// the scenario's differently-scaled textbook value.
	integer, fraction := []byte("2"), []byte("22507385850720138")
	exponent := int32(-324)
	got := parsefloat.ParseFloat[float64](integer, fraction, exponent)
	want := oracle64(t, "2.22507385850720138", exponent+int32(len(fraction)))
	require.Equal(t, want, got)
}

func TestParseFloatFloat32(t *testing.T) {
	got := parsefloat.ParseFloat[float32]([]byte("3"), []byte("14159"), -5)
	want, err := strconv.ParseFloat("3.14159", 32)
	require.NoError(t, err)
	require.Equal(t, float32(want), got)
}

func TestParseFloatZero(t *testing.T) {
	require.Equal(t, 0.0, parsefloat.ParseFloat[float64](nil, nil, 0))
	require.Equal(t, 0.0, parsefloat.ParseFloat[float64]([]byte("0"), []byte("0"), 5))
}

func TestCreateFloatMatchesParseFloat(t *testing.T) {
	a := parsefloat.ParseFloat[float64]([]byte("123"), []byte("456"), -3)
	b := parsefloat.CreateFloat[float64](123456, -3, false)
	require.Equal(t, a, b)
}

func TestParseFloatReaderMatchesParseFloat(t *testing.T) {
	intR := strings.NewReader("123")
	fracR := strings.NewReader("456")
	got, err := parsefloat.ParseFloatReader[float64](intR, fracR, -3)
	require.NoError(t, err)
	want := parsefloat.ParseFloat[float64]([]byte("123"), []byte("456"), -3)
	require.Equal(t, want, got)
}

func TestParseFloatReaderRejectsNonDigit(t *testing.T) {
	intR := strings.NewReader("12x")
	fracR := strings.NewReader("")
	_, err := parsefloat.ParseFloatReader[float64](intR, fracR, 0)
	require.Error(t, err)
}

func TestStrategyCoverage(t *testing.T) {
	parsefloat.ResetStats()
	// Fast: small exact mantissa, in-range exact power of ten.
	parsefloat.ParseFloat[float64]([]byte("5"), nil, 2)
	// Moderate: mantissa alone would qualify for the fast path, but this
	// exponent falls outside the fast path's exact-power-of-ten table
	// (bound 22), forcing the table-approximation path to resolve it.
	parsefloat.ParseFloat[float64]([]byte("3"), []byte("14159265358979"), -24)
	// Slow: the classic round-to-even-on-the-odd-integer boundary case,
	// which the moderate path's error bound cannot resolve conclusively.
	parsefloat.ParseFloat[float64]([]byte("9007199254740993"), nil, 0)

	stats := parsefloat.Stats()
	require.NotZero(t, stats.FastPath)
	require.NotZero(t, stats.ModeratePath)
	require.NotZero(t, stats.SlowPath)
}

func TestMonotonicity(t *testing.T) {
	a := parsefloat.ParseFloat[float64]([]byte("123"), []byte("456"), -3)
	b := parsefloat.ParseFloat[float64]([]byte("123"), []byte("457"), -3)
	require.LessOrEqual(t, a, b)
}
