package executor_test

import (
	"testing"

	"github.com/gadgetlib/r1cs/builder"
	"github.com/gadgetlib/r1cs/executor"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/field/toy"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunSatisfied(t *testing.T) {
	f := toy.NewUint64(97)
	b := builder.New(f)
	x := b.Wire()
	y := b.Wire()
	b.AssertProduct(expr.FromWire(f, x), expr.FromWire(f, y), expr.Constant(f, field.FromUint64(f, 12)))
	g := b.Build()

	v := wire.New(f)
	require.NoError(t, v.Set(x, field.FromUint64(f, 3)))
	require.NoError(t, v.Set(y, field.FromUint64(f, 4)))

	ok, err := executor.New(g, zerolog.Nop()).Run(v)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRunUnsatisfied(t *testing.T) {
	f := toy.NewUint64(97)
	b := builder.New(f)
	x := b.Wire()
	y := b.Wire()
	b.AssertProduct(expr.FromWire(f, x), expr.FromWire(f, y), expr.Constant(f, field.FromUint64(f, 12)))
	g := b.Build()

	v := wire.New(f)
	require.NoError(t, v.Set(x, field.FromUint64(f, 3)))
	require.NoError(t, v.Set(y, field.FromUint64(f, 5)))

	ok, err := executor.New(g, zerolog.Nop()).Run(v)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunStuckOnUnresolvableGenerator(t *testing.T) {
	f := toy.NewUint64(97)
	b := builder.New(f)
	x := b.Wire()
	b.Inverse(expr.FromWire(f, x)) // depends on x, never bound below
	g := b.Build()

	v := wire.New(f)
	_, err := executor.New(g, zerolog.Nop()).Run(v)
	require.Error(t, err)
}
