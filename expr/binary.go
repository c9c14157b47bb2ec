package expr

import "github.com/gadgetlib/r1cs/field"

// BinaryExpression is an ordered, little-endian sequence of
// BooleanExpressions (index 0 is the least significant bit). Its length is
// part of its value; operations that combine expressions of different
// widths take an explicit target width.
type BinaryExpression struct {
	bits []BooleanExpression
}

// NewBinary wraps bits (little-endian) as a BinaryExpression.
func NewBinary(bits []BooleanExpression) BinaryExpression {
	cp := make([]BooleanExpression, len(bits))
	copy(cp, bits)
	return BinaryExpression{bits: cp}
}

// Len returns the bit width.
func (b BinaryExpression) Len() int { return len(b.bits) }

// Bit returns the i-th bit, 0 = least significant.
func (b BinaryExpression) Bit(i int) BooleanExpression { return b.bits[i] }

// Bits returns the little-endian bit slice. The caller must not mutate it.
func (b BinaryExpression) Bits() []BooleanExpression { return b.bits }

// Recompose returns the field Expression sum(2^i * bits[i]), the inverse of
// a builder.Split of that width.
func (b BinaryExpression) Recompose(f field.Field) Expression {
	res := Zero(f)
	coeff := field.One(f)
	two := field.FromUint64(f, 2)
	for _, bit := range b.bits {
		res = res.Add(bit.Expression().MulScalar(coeff))
		coeff = coeff.Mul(two)
	}
	return res
}
