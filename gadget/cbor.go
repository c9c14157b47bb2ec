package gadget

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/gadgetlib/r1cs/expr"
)

// term is the on-the-wire form of one (wire_index, coefficient) pair of an
// expr.Expression. wire_index 0 denotes the constant term, per the
// documented emitted-artifact interface.
type term struct {
	Wire  uint32 `cbor:"w"`
	Coeff []byte `cbor:"c"` // big-endian, unsigned magnitude
}

type wireConstraint struct {
	A   []term `cbor:"a"`
	B   []term `cbor:"b"`
	C   []term `cbor:"c"`
	Tag string `cbor:"tag"`
}

type wireGadget struct {
	NumWires    uint32           `cbor:"num_wires"`
	Constraints []wireConstraint `cbor:"constraints"`
	BuildID     []byte           `cbor:"build_id"`
}

// exprTerms flattens e's non-zero terms into their stable wire-index order,
// for deterministic encoding regardless of Go's map iteration order.
func exprTerms(e expr.Expression) []term {
	terms := e.Terms()
	out := make([]term, 0, len(terms))
	for _, w := range e.SortedWires() {
		out = append(out, term{
			Wire:  uint32(w),
			Coeff: terms[w].BigInt().Bytes(),
		})
	}
	return out
}

// MarshalCBOR encodes g's constraint list and wire count as a compact,
// deterministic CBOR document: one map per constraint with its A/B/C
// linear combinations as (wire_index, coefficient) pairs. This is a
// convenience encoding for external tooling, not the SNARK-backend
// serialization format the engine otherwise leaves out of scope.
func (g *Gadget) MarshalCBOR() ([]byte, error) {
	wg := wireGadget{
		NumWires: g.NumWires,
		BuildID:  g.BuildID[:],
	}
	for _, c := range g.Constraints {
		wg.Constraints = append(wg.Constraints, wireConstraint{
			A:   exprTerms(c.A),
			B:   exprTerms(c.B),
			C:   exprTerms(c.C),
			Tag: c.Tag,
		})
	}
	return cbor.Marshal(wg)
}

// EncodedConstraint is the decoded, field-agnostic form of one constraint,
// returned by DecodeStats for tooling that only needs shape (wire indices
// and raw coefficient bytes), not a reconstructed Expression.
type EncodedConstraint struct {
	A, B, C []term
	Tag     string
}

// DecodeStats parses a document produced by MarshalCBOR and returns its
// wire count and constraints without reconstructing field elements:
// rehydrating coefficients requires the originating field.Field, which is
// a construction-time concern the wire format intentionally omits.
func DecodeStats(data []byte) (numWires uint32, constraints []EncodedConstraint, err error) {
	var wg wireGadget
	if err := cbor.Unmarshal(data, &wg); err != nil {
		return 0, nil, err
	}
	out := make([]EncodedConstraint, 0, len(wg.Constraints))
	for _, c := range wg.Constraints {
		out = append(out, EncodedConstraint{A: c.A, B: c.B, C: c.C, Tag: c.Tag})
	}
	return wg.NumWires, out, nil
}
