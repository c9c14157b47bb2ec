/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package field defines the prime-field abstraction gadgets are built over
// and Element, a residue class of that field backed by math/big.
//
// Concrete fields are supplied by the caller; this package only assumes an
// odd prime order >= 5 (see Field.Order). Two reference fields ship in the
// field/toy and field/bn254 subpackages.
package field

import (
	"math/big"

	"github.com/gadgetlib/r1cs/internal/bigutil"
	"github.com/pkg/errors"
)

// Field exposes the order of a prime field. Every other operation on its
// elements is defined generically in terms of that order.
type Field interface {
	// Order returns the field's modulus. Implementations must return the
	// same *big.Int (or an equal value) on every call.
	Order() *big.Int
}

// ErrInverseOfZero is returned by Element.Inverse when called on the zero
// element.
var ErrInverseOfZero = errors.New("field: inverse of zero")

// Element is a non-negative integer strictly less than F.Order(),
// representing a residue class of F. The zero value is not a valid
// Element; use Zero, One, or FromBigInt to construct one.
type Element struct {
	f Field
	v big.Int
}

// Zero returns the additive identity of f.
func Zero(f Field) Element {
	return Element{f: f}
}

// One returns the multiplicative identity of f.
func One(f Field) Element {
	e := Element{f: f}
	e.v.SetInt64(1)
	return e
}

// FromBigInt reduces n modulo f.Order() and returns the resulting Element.
func FromBigInt(f Field, n *big.Int) Element {
	e := Element{f: f}
	e.v.Mod(n, f.Order())
	return e
}

// FromUint64 reduces n modulo f.Order().
func FromUint64(f Field, n uint64) Element {
	var b big.Int
	b.SetUint64(n)
	return FromBigInt(f, &b)
}

// FromInt64 reduces n modulo f.Order(), correctly handling negative n.
func FromInt64(f Field, n int64) Element {
	var b big.Int
	b.SetInt64(n)
	return FromBigInt(f, &b)
}

// Field returns the field e belongs to.
func (e Element) Field() Field { return e.f }

// BigInt returns the canonical representative of e as a *big.Int. The
// returned value must not be mutated by the caller.
func (e Element) BigInt() *big.Int {
	return &e.v
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Equal reports whether e and other represent the same residue class. It
// panics if e and other were constructed over different fields.
func (e Element) Equal(other Element) bool {
	e.mustSameField(other)
	return e.v.Cmp(&other.v) == 0
}

// Cmp returns the canonical integer order of the two elements' representatives:
// -1 if e < other, 0 if equal, 1 if e > other.
func (e Element) Cmp(other Element) int {
	e.mustSameField(other)
	return e.v.Cmp(&other.v)
}

// Add returns e + other mod Order.
func (e Element) Add(other Element) Element {
	e.mustSameField(other)
	res := Element{f: e.f}
	res.v.Add(&e.v, &other.v)
	res.v.Mod(&res.v, e.f.Order())
	return res
}

// Sub returns e - other mod Order.
func (e Element) Sub(other Element) Element {
	e.mustSameField(other)
	res := Element{f: e.f}
	res.v.Sub(&e.v, &other.v)
	res.v.Mod(&res.v, e.f.Order())
	return res
}

// Mul returns e * other mod Order.
func (e Element) Mul(other Element) Element {
	e.mustSameField(other)
	res := Element{f: e.f}
	res.v.Mul(&e.v, &other.v)
	res.v.Mod(&res.v, e.f.Order())
	return res
}

// Neg returns -e mod Order.
func (e Element) Neg() Element {
	res := Element{f: e.f}
	if e.v.Sign() == 0 {
		return res
	}
	res.v.Sub(e.f.Order(), &e.v)
	return res
}

// Inverse returns the multiplicative inverse of e, computed via the
// extended Euclidean algorithm (math/big's ModInverse). It returns
// ErrInverseOfZero if e is zero.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrInverseOfZero
	}
	res := Element{f: e.f}
	res.v.ModInverse(&e.v, e.f.Order())
	return res, nil
}

// BitLen returns the canonical bit-length of the field, ceil(log2(Order)).
// Splits and comparisons use this as the default width.
func BitLen(f Field) int {
	return f.Order().BitLen()
}

// Bits returns the canonical little-endian bit decomposition of e, zero
// padded (or truncated, with an error on overflow) to width bits. width
// must not exceed BitLen(e.Field()).
func (e Element) Bits(width int) ([]bool, error) {
	if width > BitLen(e.f) {
		return nil, errors.Errorf("field: width %d exceeds field bit length %d", width, BitLen(e.f))
	}
	bits, err := bigutil.Bits(&e.v, width)
	if err != nil {
		return nil, errors.Wrapf(err, "field: value does not fit in %d bits", width)
	}
	return bits, nil
}

func (e Element) mustSameField(other Element) {
	if e.f != other.f {
		panic("field: operands belong to different fields")
	}
}
