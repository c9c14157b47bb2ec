// Package toy provides small prime-order fields for tests and examples.
// Production circuits should use a curve-backed field such as field/bn254.
package toy

import (
	"math/big"

	"github.com/pkg/errors"
)

// Field is a field.Field of arbitrary prime order, stored directly as a
// big.Int. It performs no primality check at construction time: the caller
// is responsible for supplying a prime order >= 5, per the Field trait's
// documented contract.
type Field struct {
	order *big.Int
}

// New wraps order as a field.Field. It panics if order is nil or less
// than 5, since the library assumes an odd prime order >= 5 throughout.
func New(order *big.Int) *Field {
	if order == nil || order.Cmp(big.NewInt(5)) < 0 {
		panic(errors.Errorf("toy: order must be >= 5, got %v", order))
	}
	return &Field{order: new(big.Int).Set(order)}
}

// NewUint64 is a convenience constructor for small orders such as the
// order-97 toy field used throughout this module's tests.
func NewUint64(order uint64) *Field {
	return New(new(big.Int).SetUint64(order))
}

// Order returns the field's modulus.
func (f *Field) Order() *big.Int {
	return f.order
}
