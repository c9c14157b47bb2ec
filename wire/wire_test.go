package wire_test

import (
	"testing"

	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/field/toy"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/stretchr/testify/require"
)

func TestConstantWirePreBound(t *testing.T) {
	f := toy.NewUint64(97)
	v := wire.New(f)

	require.True(t, v.Contains(wire.One))
	got, err := v.Get(wire.One)
	require.NoError(t, err)
	require.True(t, got.Equal(field.One(f)))
	require.Equal(t, 1, v.Len())
}

func TestSetRejectsConstantWire(t *testing.T) {
	f := toy.NewUint64(97)
	v := wire.New(f)

	err := v.Set(wire.One, field.FromUint64(f, 2))
	require.ErrorIs(t, err, wire.ErrConstantWireOverwrite)
}

func TestSetIdempotent(t *testing.T) {
	f := toy.NewUint64(97)
	v := wire.New(f)

	w := wire.Wire(1)
	require.NoError(t, v.Set(w, field.FromUint64(f, 5)))
	require.NoError(t, v.Set(w, field.FromUint64(f, 5)))
}

func TestSetConflictErrors(t *testing.T) {
	f := toy.NewUint64(97)
	v := wire.New(f)

	w := wire.Wire(1)
	require.NoError(t, v.Set(w, field.FromUint64(f, 5)))
	err := v.Set(w, field.FromUint64(f, 6))
	require.ErrorIs(t, err, wire.ErrAlreadyBound)
}

func TestGetUnbound(t *testing.T) {
	f := toy.NewUint64(97)
	v := wire.New(f)

	_, err := v.Get(wire.Wire(42))
	require.Error(t, err)
}
