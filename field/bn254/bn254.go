// Package bn254 adapts gnark-crypto's BN254 scalar field fr.Modulus to this
// module's field.Field contract, so gadgets can be built directly over the
// field most SNARK backends in the gnark-crypto ecosystem consume.
package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Field is the BN254 scalar field (the "Fr" of the BN254 curve).
type Field struct{}

// Scalar is the package-level BN254 scalar field.Field instance. Gadgets
// built against it are compatible with gnark-crypto's BN254 arithmetic.
var Scalar Field

// Order returns the BN254 scalar field modulus.
func (Field) Order() *big.Int {
	return fr.Modulus()
}
