// Package expr implements the linear-combination expression algebra: affine
// combinations of wires with field coefficients, layered into three typed
// tiers (Expression, BooleanExpression, BinaryExpression) as described in
// the data model. BooleanExpression and BinaryExpression are documentation-
// as-types: nominal wrappers with unexported fields, built through factory
// functions, since the language has no phantom types. The factories do not
// check the invariants; package builder establishes them by emitting
// constraints.
package expr

import (
	"sort"

	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/pkg/errors"
)

// Expression is a formal linear combination sum(c_i * w_i), represented as
// a mapping from wire to non-zero coefficient. The zero value is the zero
// expression. The representation is canonical: no zero-coefficient entries
// are ever stored, so structurally equal expressions are equal.
type Expression struct {
	f     field.Field
	terms map[wire.Wire]field.Element
}

// Zero returns the zero expression over f.
func Zero(f field.Field) Expression {
	return Expression{f: f, terms: map[wire.Wire]field.Element{}}
}

// Constant returns the expression c * w0 (c on the constant wire).
func Constant(f field.Field, c field.Element) Expression {
	e := Zero(f)
	if !c.IsZero() {
		e.terms[wire.One] = c
	}
	return e
}

// One returns the constant expression 1.
func One(f field.Field) Expression {
	return Constant(f, field.One(f))
}

// FromWire returns the expression with coefficient 1 on w.
func FromWire(f field.Field, w wire.Wire) Expression {
	e := Zero(f)
	e.terms[w] = field.One(f)
	return e
}

// Field returns the field this expression is defined over.
func (e Expression) Field() field.Field { return e.f }

// IsZero reports whether e is the zero expression.
func (e Expression) IsZero() bool {
	return len(e.terms) == 0
}

// Terms returns the expression's non-zero (wire, coefficient) pairs. The
// returned map must not be mutated.
func (e Expression) Terms() map[wire.Wire]field.Element {
	return e.terms
}

// Dependencies returns the set of wires with a non-zero coefficient,
// excluding the constant wire.
func (e Expression) Dependencies() map[wire.Wire]struct{} {
	deps := make(map[wire.Wire]struct{}, len(e.terms))
	for w := range e.terms {
		if w == wire.One {
			continue
		}
		deps[w] = struct{}{}
	}
	return deps
}

// SortedWires returns the expression's wires (including the constant wire,
// if present) in ascending order, for deterministic serialization/printing.
func (e Expression) SortedWires() []wire.Wire {
	ws := make([]wire.Wire, 0, len(e.terms))
	for w := range e.terms {
		ws = append(ws, w)
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
	return ws
}

// Add returns e + other.
func (e Expression) Add(other Expression) Expression {
	res := Zero(e.f)
	for w, c := range e.terms {
		res.terms[w] = c
	}
	for w, c := range other.terms {
		if existing, ok := res.terms[w]; ok {
			sum := existing.Add(c)
			if sum.IsZero() {
				delete(res.terms, w)
			} else {
				res.terms[w] = sum
			}
		} else {
			res.terms[w] = c
		}
	}
	return res
}

// Sub returns e - other.
func (e Expression) Sub(other Expression) Expression {
	return e.Add(other.Neg())
}

// Neg returns -e.
func (e Expression) Neg() Expression {
	res := Zero(e.f)
	for w, c := range e.terms {
		res.terms[w] = c.Neg()
	}
	return res
}

// MulScalar returns c * e.
func (e Expression) MulScalar(c field.Element) Expression {
	res := Zero(e.f)
	if c.IsZero() {
		return res
	}
	for w, coeff := range e.terms {
		res.terms[w] = coeff.Mul(c)
	}
	return res
}

// Evaluate computes sum(c_i * values[w_i]) mod order. It fails if any
// dependency is unbound in values.
func (e Expression) Evaluate(values *wire.Values) (field.Element, error) {
	res := field.Zero(e.f)
	for w, c := range e.terms {
		v, err := values.Get(w)
		if err != nil {
			return field.Element{}, errors.Wrapf(err, "expr: evaluating wire %d", w)
		}
		res = res.Add(c.Mul(v))
	}
	return res, nil
}

// Equal reports whether e and other are structurally identical: same
// field, same non-zero terms.
func (e Expression) Equal(other Expression) bool {
	if e.f != other.f {
		return false
	}
	if len(e.terms) != len(other.terms) {
		return false
	}
	for w, c := range e.terms {
		oc, ok := other.terms[w]
		if !ok || !c.Equal(oc) {
			return false
		}
	}
	return true
}
