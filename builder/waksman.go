package builder

import (
	"github.com/gadgetlib/r1cs/expr"
	"github.com/gadgetlib/r1cs/field"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/pkg/errors"
)

// AsWaksmanSwitchCount returns the number of switches an AS-Waksman
// permutation network over n wires uses, matching asWaksmanBuild's
// recursive construction: a column of n/2 input switches and n/2 output
// switches at this level, plus the switches of the two recursive
// subnetworks of size ceil(n/2) and floor(n/2). n<=1 needs no switches; the
// n==2 case collapses to the single base-case switch rather than the two a
// blind application of the general recursion would charge.
func AsWaksmanSwitchCount(n int) int {
	if n <= 1 {
		return 0
	}
	if n == 2 {
		return 1
	}
	topN := (n + 1) / 2
	return 2*(n/2) + AsWaksmanSwitchCount(topN) + AsWaksmanSwitchCount(n/2)
}

// asWaksmanSwitch emits the single product constraint a switch needs: with
// boolean control s, (lo, hi) = (u+s(v-u), v+s(u-v)). At s=0 this leaves
// (u,v) unchanged ("straight"); at s=1 it swaps them ("cross"). hi is
// derived from the same product term as lo, so one switch costs exactly one
// Product (one constraint, one generator), not two.
func (b *GadgetBuilder) asWaksmanSwitch(u, v expr.Expression, s expr.BooleanExpression) (lo, hi expr.Expression) {
	t := b.Product(s.Expression(), v.Sub(u))
	return u.Add(t), v.Sub(t)
}

// asWaksmanBuild constructs an AS-Waksman permutation network over ins, per
// spec.md 4.3(f): a column of input switches feeds two recursive
// subnetworks of (near-)half size, whose outputs feed a column of output
// switches. It returns the network's outputs and the switch control wires
// in the exact order waksmanRoute produces settings for, so one generator
// can zip the two together.
func (b *GadgetBuilder) asWaksmanBuild(ins []expr.Expression) (outs []expr.Expression, switches []wire.Wire) {
	n := len(ins)
	switch {
	case n == 1:
		return []expr.Expression{ins[0]}, nil
	case n == 2:
		s := b.BooleanWire()
		sw, _ := soleWire(s.Expression())
		lo, hi := b.asWaksmanSwitch(ins[0], ins[1], s)
		return []expr.Expression{lo, hi}, []wire.Wire{sw}
	}

	topN := (n + 1) / 2
	bottomN := n / 2
	numSwitch := n / 2
	odd := n%2 == 1

	topIn := make([]expr.Expression, topN)
	bottomIn := make([]expr.Expression, bottomN)
	inSwitches := make([]wire.Wire, numSwitch)
	for i := 0; i < numSwitch; i++ {
		s := b.BooleanWire()
		sw, _ := soleWire(s.Expression())
		top, bottom := b.asWaksmanSwitch(ins[2*i], ins[2*i+1], s)
		topIn[i], bottomIn[i] = top, bottom
		inSwitches[i] = sw
	}
	if odd {
		topIn[topN-1] = ins[n-1]
	}

	topOut, topSwitches := b.asWaksmanBuild(topIn)
	bottomOut, bottomSwitches := b.asWaksmanBuild(bottomIn)

	outs = make([]expr.Expression, n)
	outSwitches := make([]wire.Wire, numSwitch)
	for i := 0; i < numSwitch; i++ {
		s := b.BooleanWire()
		sw, _ := soleWire(s.Expression())
		lo, hi := b.asWaksmanSwitch(topOut[i], bottomOut[i], s)
		outs[2*i], outs[2*i+1] = lo, hi
		outSwitches[i] = sw
	}
	if odd {
		outs[n-1] = topOut[topN-1]
	}

	switches = make([]wire.Wire, 0, 2*numSwitch+len(topSwitches)+len(bottomSwitches))
	switches = append(switches, inSwitches...)
	switches = append(switches, topSwitches...)
	switches = append(switches, bottomSwitches...)
	switches = append(switches, outSwitches...)
	return outs, switches
}

// waksmanRoute computes the AS-Waksman switch settings, in asWaksmanBuild's
// emission order, that realize perm (perm[outputSlot] = inputSlot). The
// routing problem is 2-coloring the graph perm induces by pairing each
// input index with its sibling input index and each output position with
// its sibling output position: every node has degree <= 2, so the graph is
// a disjoint union of paths and even cycles and is always 2-colorable.
// Propagating a color (which half-network an input/output belongs to) from
// a seed in each connected component fixes every switch; the routing then
// recurses on the two induced half-size sub-permutations.
func waksmanRoute(perm []int) []bool {
	n := len(perm)
	if n <= 1 {
		return nil
	}
	if n == 2 {
		return []bool{perm[0] != 0}
	}

	invperm := make([]int, n)
	for y, x := range perm {
		invperm[x] = y
	}

	const unset = -1
	side := make([]int, n)
	dest := make([]int, n)
	for i := range side {
		side[i] = unset
		dest[i] = unset
	}

	odd := n%2 == 1
	partnerIn := func(x int) int {
		if odd && x == n-1 {
			return -1
		}
		return x ^ 1
	}
	partnerOut := func(y int) int {
		if odd && y == n-1 {
			return -1
		}
		return y ^ 1
	}

	type fact struct {
		isSide bool
		idx    int
		color  int
	}
	var queue []fact
	pushSide := func(x, c int) {
		if side[x] == unset {
			queue = append(queue, fact{true, x, c})
		}
	}
	pushDest := func(y, c int) {
		if dest[y] == unset {
			queue = append(queue, fact{false, y, c})
		}
	}

	if odd {
		pushSide(n-1, 0)
		pushDest(n-1, 0)
	}

	for {
		if len(queue) == 0 {
			next := -1
			for x := 0; x < n; x++ {
				if side[x] == unset {
					next = x
					break
				}
			}
			if next == -1 {
				break
			}
			pushSide(next, 0)
			continue
		}
		f := queue[0]
		queue = queue[1:]
		if f.isSide {
			if side[f.idx] != unset {
				continue
			}
			side[f.idx] = f.color
			pushDest(invperm[f.idx], f.color)
			if p := partnerIn(f.idx); p != -1 {
				pushSide(p, 1-f.color)
			}
		} else {
			if dest[f.idx] != unset {
				continue
			}
			dest[f.idx] = f.color
			pushSide(perm[f.idx], f.color)
			if p := partnerOut(f.idx); p != -1 {
				pushDest(p, 1-f.color)
			}
		}
	}

	topN := (n + 1) / 2
	bottomN := n / 2
	numSwitch := n / 2

	inSwitch := make([]bool, numSwitch)
	outSwitch := make([]bool, numSwitch)
	topOrig := make([]int, topN)
	bottomOrig := make([]int, bottomN)
	topDest := make([]int, topN)
	bottomDest := make([]int, bottomN)

	for i := 0; i < numSwitch; i++ {
		inSwitch[i] = side[2*i] == 1
		outSwitch[i] = dest[2*i] == 1
		if side[2*i] == 0 {
			topOrig[i], bottomOrig[i] = 2*i, 2*i+1
		} else {
			topOrig[i], bottomOrig[i] = 2*i+1, 2*i
		}
		if dest[2*i] == 0 {
			topDest[i], bottomDest[i] = 2*i, 2*i+1
		} else {
			topDest[i], bottomDest[i] = 2*i+1, 2*i
		}
	}
	if odd {
		topOrig[topN-1] = n - 1
		topDest[topN-1] = n - 1
	}

	origToTopSlot := make(map[int]int, topN)
	for slot, orig := range topOrig {
		origToTopSlot[orig] = slot
	}
	origToBottomSlot := make(map[int]int, bottomN)
	for slot, orig := range bottomOrig {
		origToBottomSlot[orig] = slot
	}

	topPerm := make([]int, topN)
	for slot := 0; slot < topN; slot++ {
		topPerm[slot] = origToTopSlot[perm[topDest[slot]]]
	}
	bottomPerm := make([]int, bottomN)
	for slot := 0; slot < bottomN; slot++ {
		bottomPerm[slot] = origToBottomSlot[perm[bottomDest[slot]]]
	}

	topSwitches := waksmanRoute(topPerm)
	bottomSwitches := waksmanRoute(bottomPerm)

	result := make([]bool, 0, 2*numSwitch+len(topSwitches)+len(bottomSwitches))
	result = append(result, inSwitch...)
	result = append(result, topSwitches...)
	result = append(result, bottomSwitches...)
	result = append(result, outSwitch...)
	return result
}

// matchPermutation finds, for each value in ys, an unused index in xs with
// an equal value, returning perm such that ys[i] == xs[perm[i]]. Duplicate
// values are matched arbitrarily among the indices that share them: the
// switching network only ever moves values, so any matching consistent
// with both multisets realizes a permutation that routes xs into ys.
func matchPermutation(xs, ys []field.Element) ([]int, error) {
	used := make([]bool, len(xs))
	perm := make([]int, len(ys))
	for i, y := range ys {
		found := -1
		for j, x := range xs {
			if !used[j] && x.Equal(y) {
				found = j
				break
			}
		}
		if found == -1 {
			return nil, errors.Errorf("ys[%d] has no matching unused value among xs", i)
		}
		used[found] = true
		perm[i] = found
	}
	return perm, nil
}

// waksmanRouteGenerator computes, once xs and ys are both bound, the
// concrete switch settings that route xs into ys and binds every switch
// wire of the network accordingly. When ys is not a reordering of xs it
// binds every switch to 0 and returns no error, leaving the rejection to
// the constraints.
type waksmanRouteGenerator struct {
	f        field.Field
	xs, ys   []expr.Expression
	switches []wire.Wire
}

func (g *waksmanRouteGenerator) Dependencies() map[wire.Wire]struct{} {
	deps := make(map[wire.Wire]struct{})
	for _, e := range g.xs {
		for w := range e.Dependencies() {
			deps[w] = struct{}{}
		}
	}
	for _, e := range g.ys {
		for w := range e.Dependencies() {
			deps[w] = struct{}{}
		}
	}
	return deps
}

func (g *waksmanRouteGenerator) Run(values *wire.Values) error {
	xsVals := make([]field.Element, len(g.xs))
	for i, e := range g.xs {
		v, err := e.Evaluate(values)
		if err != nil {
			return err
		}
		xsVals[i] = v
	}
	ysVals := make([]field.Element, len(g.ys))
	for i, e := range g.ys {
		v, err := e.Evaluate(values)
		if err != nil {
			return err
		}
		ysVals[i] = v
	}

	perm, err := matchPermutation(xsVals, ysVals)
	if err != nil {
		// ys is not a reordering of xs, so no routing exists: bind every
		// switch straight and let the network's AssertEqual constraints
		// report the witness as unsatisfied.
		for _, w := range g.switches {
			if err := values.Set(w, field.Zero(g.f)); err != nil {
				return err
			}
		}
		return nil
	}
	settings := waksmanRoute(perm)
	for i, w := range g.switches {
		val := field.Zero(g.f)
		if settings[i] {
			val = field.One(g.f)
		}
		if err := values.Set(w, val); err != nil {
			return err
		}
	}
	return nil
}

func (g *waksmanRouteGenerator) Describe() string {
	return "as_waksman_route"
}
