package builder

import (
	"sort"

	"github.com/gadgetlib/r1cs/errs"
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/wire"
)

// Select is the standard R1CS multiplexer: f + cond*(t-f). cond is not
// re-asserted boolean here; callers are expected to pass a value already
// known boolean (e.g. from Cmp or AssertBoolean).
func (b *GadgetBuilder) Select(cond expr.BooleanExpression, t, f expr.Expression) expr.Expression {
	return f.Add(b.Product(cond.Expression(), t.Sub(f)))
}

// AssertPermutation asserts that ys is some reordering of xs, by routing
// xs through an AS-Waksman switching network (asWaksmanBuild) and asserting
// each network output equal to the corresponding ys entry. This costs
// AsWaksmanSwitchCount(n) switches, O(n log n), rather than the O(n^2)
// constraints a sort-and-compare construction would need; a generator
// backtracks the concrete
// routing once xs and ys are both bound, by matching values between the
// two sequences and then solving switch settings via waksmanRoute.
func (b *GadgetBuilder) AssertPermutation(xs, ys []expr.Expression) {
	if len(xs) != len(ys) {
		panic(errs.ErrLengthMismatch)
	}
	if len(xs) == 0 {
		panic(errs.ErrEmptySequence)
	}
	netOut, switches := b.asWaksmanBuild(xs)
	for i := range netOut {
		b.AssertEqual(netOut[i], ys[i])
	}
	b.addGenerator(&waksmanRouteGenerator{
		f:        b.f,
		xs:       append([]expr.Expression(nil), xs...),
		ys:       append([]expr.Expression(nil), ys...),
		switches: switches,
	})
}

// SortAscendingStats is SortAscending instrumented with Tag/AddCounter,
// reporting the constraints/wires/generators consumed by the permutation
// network and the adjacent-pair comparisons together.
func (b *GadgetBuilder) SortAscendingStats(xs []expr.Expression) ([]expr.Expression, Counter) {
	before := b.Tag("sort_ascending:before")
	ys := b.SortAscending(xs)
	return ys, b.AddCounter(before, b.Tag("sort_ascending:after"))
}

// SortAscending returns a sequence asserted to be a permutation of xs in
// non-decreasing order: a generator computes the sorted values, the result
// is asserted a permutation of xs via AssertPermutation's AS-Waksman
// network, and each adjacent pair is asserted non-decreasing via Cmp.
func (b *GadgetBuilder) SortAscending(xs []expr.Expression) []expr.Expression {
	return b.sort(xs, true)
}

// SortDescending is SortAscending with the adjacent comparisons reversed.
func (b *GadgetBuilder) SortDescending(xs []expr.Expression) []expr.Expression {
	return b.sort(xs, false)
}

func (b *GadgetBuilder) sort(xs []expr.Expression, ascending bool) []expr.Expression {
	if len(xs) == 0 {
		panic(errs.ErrEmptySequence)
	}
	b.checkField(xs...)

	n := len(xs)
	ysWires := make([]wire.Wire, n)
	ys := make([]expr.Expression, n)
	for i := range ysWires {
		ysWires[i] = b.Wire()
		ys[i] = expr.FromWire(b.f, ysWires[i])
	}
	b.addGenerator(&sortGenerator{
		xs:        append([]expr.Expression(nil), xs...),
		ys:        ysWires,
		ascending: ascending,
	})

	b.AssertPermutation(xs, ys)

	for i := 0; i+1 < n; i++ {
		cmp := b.Cmp(ys[i], ys[i+1])
		if ascending {
			b.AssertEqual(cmp.Le.Expression(), b.one())
		} else {
			b.AssertEqual(cmp.Ge.Expression(), b.one())
		}
	}
	return ys
}

// sortGenerator computes the sorted permutation of xs's values and binds
// it to ys. It depends only on xs, so the executor's ready-queue scheduler
// always runs it before the AssertPermutation routing generator those same
// ys wires also participate in (which depends on both xs and ys).
type sortGenerator struct {
	xs        []expr.Expression
	ys        []wire.Wire
	ascending bool
}

func (g *sortGenerator) Dependencies() map[wire.Wire]struct{} {
	deps := make(map[wire.Wire]struct{})
	for _, e := range g.xs {
		for w := range e.Dependencies() {
			deps[w] = struct{}{}
		}
	}
	return deps
}

func (g *sortGenerator) Run(values *wire.Values) error {
	vals := make([]field.Element, len(g.xs))
	for i, e := range g.xs {
		v, err := e.Evaluate(values)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	sort.Slice(vals, func(i, j int) bool {
		c := vals[i].Cmp(vals[j])
		if g.ascending {
			return c < 0
		}
		return c > 0
	})
	for i, w := range g.ys {
		if err := values.Set(w, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

func (g *sortGenerator) Describe() string {
	return "sort"
}
