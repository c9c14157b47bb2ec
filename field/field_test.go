package field_test

import (
	"math/big"
	"testing"

	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/field/toy"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	f := toy.NewUint64(97)

	a := field.FromUint64(f, 40)
	b := field.FromUint64(f, 90)

	require.Equal(t, uint64(33), a.Add(b).BigInt().Uint64())
	require.Equal(t, uint64(47), a.Sub(b).BigInt().Uint64())
	require.Equal(t, uint64(47), field.FromInt64(f, -50).BigInt().Uint64())
	require.Equal(t, uint64(11), a.Mul(b).BigInt().Uint64())
}

func TestInverse(t *testing.T) {
	f := toy.NewUint64(97)

	a := field.FromUint64(f, 40)
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(field.One(f)))

	_, err = field.Zero(f).Inverse()
	require.ErrorIs(t, err, field.ErrInverseOfZero)
}

func TestBits(t *testing.T) {
	f := toy.NewUint64(97)

	bits, err := field.FromUint64(f, 11).Bits(4)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, true}, bits) // 11 = 1011

	_, err = field.FromUint64(f, 11).Bits(3)
	require.Error(t, err)
}

func TestMustSameFieldPanics(t *testing.T) {
	f1 := toy.NewUint64(97)
	f2 := toy.NewUint64(101)

	require.Panics(t, func() {
		field.One(f1).Add(field.One(f2))
	})
}

func TestBitLen(t *testing.T) {
	f := toy.New(big.NewInt(97))
	require.Equal(t, 7, field.BitLen(f))
}
