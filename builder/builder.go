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

// Package builder implements GadgetBuilder, the public surface gadgets are
// assembled through: wire allocation, R1CS constraint emission, the
// derived arithmetic and boolean/binary algebra layered on top of it, and
// the primitives (comparisons, bit-splitting, permutation, sorting) that
// depend only on those.
//
// Construction-time misuse (mixing expressions from different fields,
// requesting a Split wider than the field supports, mismatched binary
// widths) panics with an errs sentinel: these are programmer
// errors, not properties of a witness, and are not meant to be recovered
// from mid-circuit (see api.go in the reference frontend this package is
// modeled on).
package builder

import (
	"github.com/gadgetlib/r1cs/errs"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/gadget"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/google/uuid"
)

// GadgetBuilder accumulates R1CS constraints and witness generators over a
// single field. It is not safe for concurrent use: each builder is owned
// by a single caller, exactly like the Gadget and WireValues it produces.
type GadgetBuilder struct {
	f field.Field

	nextWire    wire.Wire
	constraints []gadget.Constraint
	generators  []gadget.Generator

	// booleanWires records wires that AssertBoolean has constrained.
	// BooleanWire consults it for the wire it has just allocated, which is
	// never already recorded, and AssertBoolean emits its constraint
	// unconditionally, so no constraint is skipped on account of it. No
	// duplicate-constraint elimination is performed.
	booleanWires map[wire.Wire]bool
}

// New returns an empty GadgetBuilder over f. Wire 0 (the constant wire) is
// implicitly allocated; the first call to Wire returns index 1.
func New(f field.Field) *GadgetBuilder {
	return &GadgetBuilder{
		f:            f,
		nextWire:     1,
		booleanWires: make(map[wire.Wire]bool),
	}
}

// Field returns the field this builder emits constraints over.
func (b *GadgetBuilder) Field() field.Field { return b.f }

// Wire allocates and returns a fresh wire index.
func (b *GadgetBuilder) Wire() wire.Wire {
	w := b.nextWire
	b.nextWire++
	return w
}

// zero returns the zero expression over b's field.
func (b *GadgetBuilder) zero() expr.Expression { return expr.Zero(b.f) }

// one returns the constant-1 expression over b's field.
func (b *GadgetBuilder) one() expr.Expression { return expr.One(b.f) }

// checkField panics with ErrFieldMismatch if e was built over a different
// field than b.
func (b *GadgetBuilder) checkField(es ...expr.Expression) {
	for _, e := range es {
		if e.Field() != b.f {
			panic(errs.ErrFieldMismatch)
		}
	}
}

// AssertProduct appends the constraint a*b = c.
func (b *GadgetBuilder) AssertProduct(a, bb, c expr.Expression) {
	b.checkField(a, bb, c)
	b.constraints = append(b.constraints, gadget.Constraint{A: a, B: bb, C: c})
}

// AssertProductTagged is AssertProduct with a debug tag attached to the
// emitted constraint.
func (b *GadgetBuilder) AssertProductTagged(a, bb, c expr.Expression, tag string) {
	b.checkField(a, bb, c)
	b.constraints = append(b.constraints, gadget.Constraint{A: a, B: bb, C: c, Tag: tag})
}

// AssertEqual appends the constraint a*1 = bb.
func (b *GadgetBuilder) AssertEqual(a, bb expr.Expression) {
	b.AssertProductTagged(a, b.one(), bb, "assert_equal")
}

// AssertZero appends the constraint a*1 = 0.
func (b *GadgetBuilder) AssertZero(a expr.Expression) {
	b.AssertProductTagged(a, b.one(), b.zero(), "assert_zero")
}

// AssertBoolean appends the constraint e*(e-1) = 0 and returns e tagged as
// a BooleanExpression.
func (b *GadgetBuilder) AssertBoolean(e expr.Expression) expr.BooleanExpression {
	b.checkField(e)
	eMinus1 := e.Sub(b.one())
	b.AssertProductTagged(e, eMinus1, b.zero(), "assert_boolean")
	if w, ok := soleWire(e); ok {
		b.booleanWires[w] = true
	}
	return expr.NewBoolean(e)
}

// soleWire reports whether e is exactly 1*w for some wire w (no constant
// term, no other wires), which is the shape BooleanWire/Split allocate.
func soleWire(e expr.Expression) (wire.Wire, bool) {
	terms := e.Terms()
	if len(terms) != 1 {
		return 0, false
	}
	for w, c := range terms {
		if w != wire.One && c.BigInt().Cmp(field.One(c.Field()).BigInt()) == 0 {
			return w, true
		}
	}
	return 0, false
}

// BooleanWire allocates a fresh wire and asserts it boolean.
func (b *GadgetBuilder) BooleanWire() expr.BooleanExpression {
	w := b.Wire()
	if b.booleanWires[w] {
		return expr.NewBoolean(expr.FromWire(b.f, w))
	}
	return b.AssertBoolean(expr.FromWire(b.f, w))
}

// BinaryWire allocates width fresh wires and asserts each one boolean,
// returning them little-endian.
func (b *GadgetBuilder) BinaryWire(width int) expr.BinaryExpression {
	bits := make([]expr.BooleanExpression, width)
	for i := range bits {
		bits[i] = b.BooleanWire()
	}
	return expr.NewBinary(bits)
}

// AssertNonzero introduces a witness wire e_inv with the constraint
// e*e_inv = 1 and a generator computing e_inv = e.Inverse(). Execution
// fails iff e evaluates to zero.
func (b *GadgetBuilder) AssertNonzero(e expr.Expression) {
	b.checkField(e)
	inv := b.Wire()
	invExpr := expr.FromWire(b.f, inv)
	b.AssertProductTagged(e, invExpr, b.one(), "assert_nonzero")
	b.addGenerator(&inverseGenerator{f: b.f, in: e, out: inv})
}

// Product allocates a fresh wire p, emits a*bb = p, registers a generator
// computing p = a*bb, and returns Expression(p).
func (b *GadgetBuilder) Product(a, bb expr.Expression) expr.Expression {
	b.checkField(a, bb)
	p := b.Wire()
	pExpr := expr.FromWire(b.f, p)
	b.AssertProductTagged(a, bb, pExpr, "product")
	b.addGenerator(&productGenerator{f: b.f, a: a, bVal: bb, out: p})
	return pExpr
}

// Inverse returns e_inv such that e*e_inv = 1, failing at execution time
// iff e evaluates to zero.
func (b *GadgetBuilder) Inverse(e expr.Expression) expr.Expression {
	b.checkField(e)
	inv := b.Wire()
	invExpr := expr.FromWire(b.f, inv)
	b.AssertProductTagged(e, invExpr, b.one(), "inverse")
	b.addGenerator(&inverseGenerator{f: b.f, in: e, out: inv})
	return invExpr
}

// Quotient returns a * Inverse(bb).
func (b *GadgetBuilder) Quotient(a, bb expr.Expression) expr.Expression {
	return b.Product(a, b.Inverse(bb))
}

// Exp returns e raised to the power k (k >= 0) via square-and-multiply,
// using at most 2*floor(log2(k)) Product calls.
func (b *GadgetBuilder) Exp(e expr.Expression, k uint64) expr.Expression {
	b.checkField(e)
	if k == 0 {
		return b.one()
	}
	result := e
	base := e
	k--
	for k > 0 {
		if k&1 == 1 {
			result = b.Product(result, base)
		}
		k >>= 1
		if k > 0 {
			base = b.Product(base, base)
		}
	}
	return result
}

func (b *GadgetBuilder) addGenerator(g gadget.Generator) {
	b.generators = append(b.generators, g)
}

// Build freezes the builder into an immutable Gadget. The builder must not
// be used afterward.
func (b *GadgetBuilder) Build() *gadget.Gadget {
	return &gadget.Gadget{
		Field:       b.f,
		NumWires:    uint32(b.nextWire),
		Constraints: append([]gadget.Constraint(nil), b.constraints...),
		Generators:  append([]gadget.Generator(nil), b.generators...),
		BuildID:     uuid.New(),
	}
}
