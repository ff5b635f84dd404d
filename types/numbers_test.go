package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMul64(t *testing.T) {
	r, ok := Mul64(300, 100)
	require.True(t, ok)
	require.EqualValues(t, 30000, r)

	_, ok = Mul64(math.MaxInt64, 2)
	require.False(t, ok)

	r, ok = Mul64(0, math.MaxInt64)
	require.True(t, ok)
	require.EqualValues(t, 0, r)
}

func TestAdd64(t *testing.T) {
	r, ok := Add64(1, 2)
	require.True(t, ok)
	require.EqualValues(t, 3, r)

	_, ok = Add64(math.MaxInt64, 1)
	require.False(t, ok)

	r, ok = Add64(math.MaxInt64, 0)
	require.True(t, ok)
	require.EqualValues(t, math.MaxInt64, r)
}

func TestMulDiv64(t *testing.T) {
	// fast path
	r, ok := MulDiv64(100, 5, 6)
	require.True(t, ok)
	require.EqualValues(t, 83, r)

	// floor, not round
	r, ok = MulDiv64(100, 1, 6)
	require.True(t, ok)
	require.EqualValues(t, 16, r)

	// big.Int path: a*b overflows int64 but the quotient fits
	r, ok = MulDiv64(math.MaxInt64, 3, 6)
	require.True(t, ok)
	require.EqualValues(t, math.MaxInt64/2, r)

	// quotient itself overflows
	_, ok = MulDiv64(math.MaxInt64, 2, 1)
	require.False(t, ok)

	// invalid divisor
	_, ok = MulDiv64(1, 1, 0)
	require.False(t, ok)
}

func TestPrefixEndBytes(t *testing.T) {
	require.Equal(t, []byte{0x02}, PrefixEndBytes([]byte{0x01}))
	require.Equal(t, []byte{0x01, 0x03}, PrefixEndBytes([]byte{0x01, 0x02}))
	require.Equal(t, []byte{0x02}, PrefixEndBytes([]byte{0x01, 0xFF}))
	require.Nil(t, PrefixEndBytes([]byte{0xFF, 0xFF}))
	require.Nil(t, PrefixEndBytes(nil))
}

func TestCoinsPlusMinus(t *testing.T) {
	cs, ok := Coins{}.Plus(NewCoin("core", 100))
	require.True(t, ok)
	cs, ok = cs.Plus(NewCoin("aaa", 5))
	require.True(t, ok)
	require.EqualValues(t, 100, cs.AmountOf("core"))
	require.EqualValues(t, 5, cs.AmountOf("aaa"))
	require.Equal(t, "aaa", cs[0].Denom)

	cs, ok = cs.Minus(NewCoin("core", 40))
	require.True(t, ok)
	require.EqualValues(t, 60, cs.AmountOf("core"))

	_, ok = cs.Minus(NewCoin("core", 61))
	require.False(t, ok)

	cs, ok = cs.Minus(NewCoin("aaa", 5))
	require.True(t, ok)
	require.EqualValues(t, 0, cs.AmountOf("aaa"))
	require.Len(t, cs, 1)
}

func TestCoinsPlusOverflow(t *testing.T) {
	cs, ok := Coins{}.Plus(NewCoin("core", math.MaxInt64))
	require.True(t, ok)

	// a wrapped balance would go negative; the add must refuse instead
	_, ok = cs.Plus(NewCoin("core", 1))
	require.False(t, ok)

	cs, ok = cs.Plus(NewCoin("core", 0))
	require.True(t, ok)
	require.EqualValues(t, math.MaxInt64, cs.AmountOf("core"))
}
