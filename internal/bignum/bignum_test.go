package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func toBig(u *Uint) *big.Int {
	z := new(big.Int)
	w := u.limbs()
	for i := len(w) - 1; i >= 0; i-- {
		z.Lsh(z, uint(_W))
		z.Or(z, new(big.Int).SetUint64(uint64(w[i])))
	}
	return z
}

func TestUintSetUint64(t *testing.T) {
	var u Uint
	u.SetUint64(123456789)
	require.Equal(t, big.NewInt(123456789), toBig(&u))
}

func TestUintAddSub(t *testing.T) {
	var a, b, sum, diff Uint
	a.SetUint64(1<<62 + 17)
	b.SetUint64(1<<61 + 5)
	sum.Add(&a, &b)
	require.Equal(t, new(big.Int).Add(toBig(&a), toBig(&b)), toBig(&sum))

	diff.Sub(&a, &b)
	require.Equal(t, new(big.Int).Sub(toBig(&a), toBig(&b)), toBig(&diff))
}

func TestUintShl(t *testing.T) {
	var a, shifted Uint
	a.SetUint64(0xDEADBEEF)
	shifted.Shl(&a, 37)
	want := new(big.Int).Lsh(toBig(&a), 37)
	require.Equal(t, want, toBig(&shifted))
}

func TestUintShlAliasing(t *testing.T) {
	var a Uint
	a.SetUint64(0xDEADBEEF)
	want := new(big.Int).Lsh(toBig(&a), 9)
	a.Shl(&a, 9)
	require.Equal(t, want, toBig(&a))
}

func TestUintCmp(t *testing.T) {
	var a, b Uint
	a.SetUint64(100)
	b.SetUint64(200)
	require.Equal(t, -1, a.Cmp(&b))
	require.Equal(t, 1, b.Cmp(&a))
	require.Equal(t, 0, a.Cmp(&a))
}

func TestUintMulPow5(t *testing.T) {
	var a, z Uint
	a.SetUint64(7)
	z.MulPow5(&a, 40)
	want := new(big.Int).Mul(big.NewInt(7), new(big.Int).Exp(big.NewInt(5), big.NewInt(40), nil))
	require.Equal(t, want, toBig(&z))
}

func TestDecToUint(t *testing.T) {
	var d Dec
	for _, c := range "987654321098765432109876543210" {
		d.AppendDigit(uint8(c - '0'))
	}
	var u Uint
	d.ToUint(&u)
	want, ok := new(big.Int).SetString("987654321098765432109876543210", 10)
	require.True(t, ok)
	require.Equal(t, want, toBig(&u))
}

func TestDecIsZero(t *testing.T) {
	var d Dec
	require.True(t, d.IsZero())
	d.AppendDigit(0)
	require.True(t, d.IsZero())
	d.AppendDigit(1)
	require.False(t, d.IsZero())
}
