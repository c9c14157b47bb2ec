package expr

import "github.com/gadgetlib/r1cs/field"

// BooleanExpression wraps an Expression with the invariant that its value
// is 0 or 1 under any satisfying witness. It can only be constructed by
// operations that either emit the boolean constraint e*(e-1)=0, or that
// preserve the invariant algebraically (Not, and the builder's And/Or/Xor).
type BooleanExpression struct {
	e Expression
}

// NewBoolean wraps e as a BooleanExpression without re-checking the
// invariant. It is exported for use by package builder, which is the only
// place the invariant can actually be established (by emitting a
// constraint) or is otherwise provably preserved; callers outside this
// module's own packages should prefer builder.GadgetBuilder methods.
func NewBoolean(e Expression) BooleanExpression {
	return BooleanExpression{e: e}
}

// Expression returns the underlying linear combination.
func (b BooleanExpression) Expression() Expression { return b.e }

// Not returns 1 - b, which preserves the boolean invariant algebraically
// without any new constraint.
func (b BooleanExpression) Not() BooleanExpression {
	return NewBoolean(One(b.e.f).Sub(b.e))
}
