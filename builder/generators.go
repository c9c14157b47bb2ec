package builder

import (
	"fmt"

	"github.com/gadgetlib/r1cs/errs"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/pkg/errors"
)

// productGenerator computes out = a*bVal, as registered by Product.
type productGenerator struct {
	f    field.Field
	a, bVal expr.Expression
	out  wire.Wire
}

func (g *productGenerator) Dependencies() map[wire.Wire]struct{} {
	deps := g.a.Dependencies()
	for w := range g.bVal.Dependencies() {
		deps[w] = struct{}{}
	}
	return deps
}

func (g *productGenerator) Run(values *wire.Values) error {
	av, err := g.a.Evaluate(values)
	if err != nil {
		return err
	}
	bv, err := g.bVal.Evaluate(values)
	if err != nil {
		return err
	}
	return values.Set(g.out, av.Mul(bv))
}

func (g *productGenerator) Describe() string {
	return fmt.Sprintf("product -> wire %d", g.out)
}

// inverseGenerator computes out = in.Inverse(), failing if in evaluates to
// zero, as registered by Inverse/AssertNonzero.
type inverseGenerator struct {
	f   field.Field
	in  expr.Expression
	out wire.Wire
}

func (g *inverseGenerator) Dependencies() map[wire.Wire]struct{} {
	return g.in.Dependencies()
}

func (g *inverseGenerator) Run(values *wire.Values) error {
	v, err := g.in.Evaluate(values)
	if err != nil {
		return err
	}
	inv, err := v.Inverse()
	if err != nil {
		return errors.Wrapf(errs.ErrGeneratorFailed, "inverse: %v", err)
	}
	return values.Set(g.out, inv)
}

func (g *inverseGenerator) Describe() string {
	return fmt.Sprintf("inverse -> wire %d", g.out)
}

// splitGenerator reads e and writes its canonical little-endian bit
// decomposition of width len(bits) into bits, as registered by Split.
type splitGenerator struct {
	f     field.Field
	in    expr.Expression
	bits  []wire.Wire
	width int
}

func (g *splitGenerator) Dependencies() map[wire.Wire]struct{} {
	return g.in.Dependencies()
}

func (g *splitGenerator) Run(values *wire.Values) error {
	v, err := g.in.Evaluate(values)
	if err != nil {
		return err
	}
	bits, err := v.Bits(g.width)
	if err != nil {
		return errors.Wrapf(errs.ErrGeneratorFailed, "split: %v", err)
	}
	for i, w := range g.bits {
		val := field.Zero(g.f)
		if bits[i] {
			val = field.One(g.f)
		}
		if err := values.Set(w, val); err != nil {
			return err
		}
	}
	return nil
}

func (g *splitGenerator) Describe() string {
	return fmt.Sprintf("split(width=%d)", g.width)
}
