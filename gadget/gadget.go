// Package gadget defines the frozen, immutable artifact a GadgetBuilder
// produces: a bundle of R1CS constraints and witness generators, plus the
// wire count they were allocated against.
package gadget

import (
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/google/uuid"
)

// Constraint is one row (A, B, C) of the R1CS, interpreted as A*B = C.
// Constraint order has no semantic effect but is stable across identical
// construction sequences, so downstream artifacts (serialized matrices,
// debug traces) reproduce exactly.
type Constraint struct {
	A, B, C expr.Expression
	// Tag is an optional human-readable description of the constraint's
	// origin, used for debugging a failed executor.Executor.Run; it has no
	// semantic effect on Run's result.
	Tag string
}

// Evaluate reports whether the constraint holds on values: A(values) *
// B(values) == C(values). It fails if any operand has an unbound
// dependency.
func (c Constraint) Evaluate(values *wire.Values) (bool, error) {
	a, err := c.A.Evaluate(values)
	if err != nil {
		return false, err
	}
	b, err := c.B.Evaluate(values)
	if err != nil {
		return false, err
	}
	want, err := c.C.Evaluate(values)
	if err != nil {
		return false, err
	}
	return a.Mul(b).Equal(want), nil
}

// Generator is an opaque unit of witness computation: given the wires it
// depends on, Run extends values with the wires it is responsible for.
// Run may read any wire present in values but must only write the wires
// this generator was registered to produce.
type Generator interface {
	// Dependencies returns the wires that must be bound before Run can
	// execute.
	Dependencies() map[wire.Wire]struct{}
	// Run computes and sets this generator's output wire(s) in values.
	// It must be deterministic given the bound values of Dependencies().
	Run(values *wire.Values) error
	// Describe returns a short human-readable label for trace logging.
	Describe() string
}

// Gadget is the immutable bundle (num_wires, constraints, generators)
// produced by a GadgetBuilder's Build. Once built, a Gadget is read-only
// and safe to run through executor.Executor.Run any number of times (Run
// mutates only the caller-supplied wire.Values, never the Gadget itself).
type Gadget struct {
	Field       field.Field
	NumWires    uint32
	Constraints []Constraint
	Generators  []Generator

	// BuildID uniquely identifies this gadget's construction, so external
	// tooling (SNARK backends, trace viewers) can correlate a frozen
	// gadget with logs produced while it was being built, without
	// re-hashing its constraint list.
	BuildID uuid.UUID
}

// Stats summarizes a gadget's size, for instrumentation and regression
// tracking of the primitives library's output (bit-splits, permutation
// networks, Merkle proofs all have a predictable constraint count).
type Stats struct {
	NumWires       uint32
	NumConstraints int
	NumGenerators  int
}

// Stats computes size counters for g.
func (g *Gadget) Stats() Stats {
	return Stats{
		NumWires:       g.NumWires,
		NumConstraints: len(g.Constraints),
		NumGenerators:  len(g.Generators),
	}
}
