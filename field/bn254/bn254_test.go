package bn254_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/gadgetlib/r1cs/builder"
	"github.com/gadgetlib/r1cs/executor"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/field/bn254"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestCubeOverBN254 is the worked example from the cube scenario: x=5,
// constraints x*x=s, s*x=c. Over the BN254 scalar field, execution must
// succeed with c=125.
func TestCubeOverBN254(t *testing.T) {
	f := bn254.Scalar
	b := builder.New(f)

	x := b.Wire()
	xExpr := expr.FromWire(f, x)
	s := b.Product(xExpr, xExpr)
	c := b.Product(s, xExpr)
	g := b.Build()

	v := wire.New(f)
	require.NoError(t, v.Set(x, field.FromUint64(f, 5)))

	ok, err := executor.New(g, zerolog.Nop()).Run(v)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := c.Evaluate(v)
	require.NoError(t, err)
	require.Equal(t, uint64(125), got.BigInt().Uint64())
}

// TestOrderMatchesGnarkCrypto sanity-checks the Field adapter against the
// modulus gnark-crypto's fr package itself reports.
func TestOrderMatchesGnarkCrypto(t *testing.T) {
	require.True(t, bn254.Scalar.Order().Sign() > 0)
	require.Equal(t, 254, bn254.Scalar.Order().BitLen())
	require.Equal(t, 0, bn254.Scalar.Order().Cmp(fr.Modulus()))
}
