package gadget_test

import (
	"testing"

	"github.com/gadgetlib/r1cs/builder"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field/toy"
	"github.com/gadgetlib/r1cs/gadget"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) *gadget.Gadget {
	t.Helper()
	f := toy.NewUint64(97)
	b := builder.New(f)
	x := b.Wire()
	xExpr := expr.FromWire(f, x)
	b.Product(xExpr, xExpr)
	return b.Build()
}

func TestStats(t *testing.T) {
	g := buildSample(t)
	stats := g.Stats()
	require.Equal(t, 1, stats.NumConstraints)
	require.Equal(t, 1, stats.NumGenerators)
	require.EqualValues(t, 3, stats.NumWires) // wire 0 (constant) + x + product output
}

func TestBuildIDUnique(t *testing.T) {
	g1 := buildSample(t)
	g2 := buildSample(t)
	require.NotEqual(t, g1.BuildID, g2.BuildID)
}

func TestMarshalCBORRoundTripsShape(t *testing.T) {
	g := buildSample(t)
	data, err := g.MarshalCBOR()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	numWires, constraints, err := gadget.DecodeStats(data)
	require.NoError(t, err)
	require.Equal(t, g.NumWires, numWires)
	require.Len(t, constraints, len(g.Constraints))
}
