// Package wire defines the witness-vector identities gadgets are built
// from: Wire, an opaque index into the witness, and Values, a partial
// mapping from wires to field elements.
package wire

import (
	"github.com/gadgetlib/r1cs/field"
	"github.com/pkg/errors"
)

// One is the reserved constant wire: it is always bound to the field's
// multiplicative identity and may never be rebound.
const One Wire = 0

// Wire is an opaque index into a witness vector. Wires are cheap to copy
// and compare; they do not own the value they identify.
type Wire uint32

// ErrConstantWireOverwrite is returned when code attempts to rebind wire 0.
var ErrConstantWireOverwrite = errors.New("wire: the constant wire (0) cannot be rebound")

// ErrAlreadyBound is returned by Set when w is already bound to a
// different value than the one being assigned.
var ErrAlreadyBound = errors.New("wire: already bound to a different value")

// Values is a finite mapping from allocated wires to field elements. The
// zero value is not usable; construct with New.
type Values struct {
	f    field.Field
	vals map[Wire]field.Element
}

// New returns an empty Values over f, with the constant wire pre-bound
// to one.
func New(f field.Field) *Values {
	return &Values{
		f:    f,
		vals: map[Wire]field.Element{One: field.One(f)},
	}
}

// Field returns the field these values belong to.
func (v *Values) Field() field.Field { return v.f }

// Contains reports whether w is bound.
func (v *Values) Contains(w Wire) bool {
	_, ok := v.vals[w]
	return ok
}

// Get returns the value bound to w, or an error if it is unbound.
func (v *Values) Get(w Wire) (field.Element, error) {
	e, ok := v.vals[w]
	if !ok {
		return field.Element{}, errors.Errorf("wire: %d is unbound", w)
	}
	return e, nil
}

// Set binds w to e. It fails if w is the constant wire, or if w is
// already bound to a value other than e: multiple generators may
// legitimately attempt to fix the same wire, and this is the consistency
// check that catches disagreement between them.
func (v *Values) Set(w Wire, e field.Element) error {
	if w == One {
		return ErrConstantWireOverwrite
	}
	if existing, ok := v.vals[w]; ok {
		if !existing.Equal(e) {
			return errors.Wrapf(ErrAlreadyBound, "wire %d: existing %s, new %s", w, existing.BigInt(), e.BigInt())
		}
		return nil
	}
	v.vals[w] = e
	return nil
}

// Len returns the number of bound wires, including the constant wire.
func (v *Values) Len() int {
	return len(v.vals)
}
