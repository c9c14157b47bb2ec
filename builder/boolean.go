package builder

import (
	"github.com/gadgetlib/r1cs/errs"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
)

// And returns a && b. It is exactly Product(a, b): the product of two
// 0/1 values is itself 0/1, so no extra constraint is needed beyond the
// one Product already emits.
func (b *GadgetBuilder) And(a, bb expr.BooleanExpression) expr.BooleanExpression {
	return expr.NewBoolean(b.Product(a.Expression(), bb.Expression()))
}

// Or returns a || b = a + b - a*b.
func (b *GadgetBuilder) Or(a, bb expr.BooleanExpression) expr.BooleanExpression {
	ab := b.Product(a.Expression(), bb.Expression())
	return expr.NewBoolean(a.Expression().Add(bb.Expression()).Sub(ab))
}

// Xor returns a != b = a + b - 2*a*b.
func (b *GadgetBuilder) Xor(a, bb expr.BooleanExpression) expr.BooleanExpression {
	ab := b.Product(a.Expression(), bb.Expression())
	two := field.FromUint64(b.f, 2)
	return expr.NewBoolean(a.Expression().Add(bb.Expression()).Sub(ab.MulScalar(two)))
}

// Not returns !a = 1 - a, algebraically, with no new constraint.
func (b *GadgetBuilder) Not(a expr.BooleanExpression) expr.BooleanExpression {
	return a.Not()
}

func (b *GadgetBuilder) checkSameWidth(a, c expr.BinaryExpression) {
	if a.Len() != c.Len() {
		panic(errs.ErrWidthMismatch)
	}
}

// BitwiseAnd applies And element-wise to two equal-width BinaryExpressions.
func (b *GadgetBuilder) BitwiseAnd(a, c expr.BinaryExpression) expr.BinaryExpression {
	b.checkSameWidth(a, c)
	out := make([]expr.BooleanExpression, a.Len())
	for i := range out {
		out[i] = b.And(a.Bit(i), c.Bit(i))
	}
	return expr.NewBinary(out)
}

// BitwiseOr applies Or element-wise to two equal-width BinaryExpressions.
func (b *GadgetBuilder) BitwiseOr(a, c expr.BinaryExpression) expr.BinaryExpression {
	b.checkSameWidth(a, c)
	out := make([]expr.BooleanExpression, a.Len())
	for i := range out {
		out[i] = b.Or(a.Bit(i), c.Bit(i))
	}
	return expr.NewBinary(out)
}

// BitwiseXor applies Xor element-wise to two equal-width BinaryExpressions.
func (b *GadgetBuilder) BitwiseXor(a, c expr.BinaryExpression) expr.BinaryExpression {
	b.checkSameWidth(a, c)
	out := make([]expr.BooleanExpression, a.Len())
	for i := range out {
		out[i] = b.Xor(a.Bit(i), c.Bit(i))
	}
	return expr.NewBinary(out)
}

// BitwiseNot applies Not element-wise to a.
func (b *GadgetBuilder) BitwiseNot(a expr.BinaryExpression) expr.BinaryExpression {
	out := make([]expr.BooleanExpression, a.Len())
	for i := range out {
		out[i] = b.Not(a.Bit(i))
	}
	return expr.NewBinary(out)
}

// OverflowPolicy controls the output width of BinarySum.
type OverflowPolicy int

const (
	// Wrapping discards the final carry; the result has width
	// max(a.Len(), c.Len()).
	Wrapping OverflowPolicy = iota
	// NonWrapping keeps the final carry; the result has width
	// max(a.Len(), c.Len())+1.
	NonWrapping
)

// BinarySum adds two bit vectors with a ripple-carry adder: each bit
// position emits the standard full-adder constraints via And/Xor. The
// shorter operand is implicitly zero-extended. With policy Wrapping the
// result has width max(len(a),len(c)); with NonWrapping it is one bit
// wider and the top bit is the final carry.
func (b *GadgetBuilder) BinarySum(a, c expr.BinaryExpression, policy OverflowPolicy) expr.BinaryExpression {
	width := a.Len()
	if c.Len() > width {
		width = c.Len()
	}
	bit := func(x expr.BinaryExpression, i int) expr.BooleanExpression {
		if i < x.Len() {
			return x.Bit(i)
		}
		return expr.NewBoolean(b.zero())
	}

	sum := make([]expr.BooleanExpression, 0, width+1)
	carry := expr.NewBoolean(b.zero())
	for i := 0; i < width; i++ {
		ai, ci := bit(a, i), bit(c, i)
		axc := b.Xor(ai, ci)
		s := b.Xor(axc, carry)
		// carryOut = (ai & ci) | (axc & carry)
		aAndC := b.And(ai, ci)
		axcAndCarry := b.And(axc, carry)
		carry = b.Or(aAndC, axcAndCarry)
		sum = append(sum, s)
	}
	if policy == NonWrapping {
		sum = append(sum, carry)
	}
	return expr.NewBinary(sum)
}
