// Package executor turns a frozen gadget.Gadget plus a partial wire
// assignment into a complete witness and a constraint-satisfaction
// verdict: a ready-queue scheduler runs each generator once its
// dependencies are bound, then every constraint is checked against the
// finished assignment.
package executor

import (
	"github.com/gadgetlib/r1cs/errs"
	"github.com/gadgetlib/r1cs/gadget"
	"github.com/gadgetlib/r1cs/wire"
	"github.com/rs/zerolog"
)

// Executor runs a Gadget's generators to completion over a set of wire
// values, then checks that every constraint is satisfied.
type Executor struct {
	g      *gadget.Gadget
	logger zerolog.Logger
}

// New returns an Executor for g. The zero Logger (zerolog.Logger{}) is
// zerolog's disabled logger; pass zerolog.New(os.Stderr) or similar to see
// a trace of generator execution order and any violated constraint.
func New(g *gadget.Gadget, logger zerolog.Logger) *Executor {
	return &Executor{g: g, logger: logger}
}

func (x *Executor) ready(gen gadget.Generator, values *wire.Values) bool {
	for w := range gen.Dependencies() {
		if !values.Contains(w) {
			return false
		}
	}
	return true
}

// Run executes every generator in dependency order, writing their outputs
// into values, then evaluates every constraint against the completed
// assignment. It returns (true, nil) iff every constraint holds on the
// resulting witness. It returns an error if the scheduler cannot make
// progress (ErrSchedulerStuck, meaning a cyclic or mis-specified gadget)
// or a generator itself fails (e.g. inverting a zero value).
func (x *Executor) Run(values *wire.Values) (bool, error) {
	pending := append([]gadget.Generator(nil), x.g.Generators...)

	for len(pending) > 0 {
		progressed := false
		remaining := pending[:0]
		for _, gen := range pending {
			if x.ready(gen, values) {
				x.logger.Debug().Str("generator", gen.Describe()).Msg("running")
				if err := gen.Run(values); err != nil {
					x.logger.Warn().Str("generator", gen.Describe()).Err(err).Msg("generator failed")
					return false, err
				}
				progressed = true
			} else {
				remaining = append(remaining, gen)
			}
		}
		pending = remaining
		if !progressed {
			x.logger.Warn().Int("stuck", len(pending)).Msg("scheduler made no progress")
			return false, errs.ErrSchedulerStuck
		}
	}

	for i, c := range x.g.Constraints {
		ok, err := c.Evaluate(values)
		if err != nil {
			return false, err
		}
		if !ok {
			x.logger.Debug().Int("constraint", i).Str("tag", c.Tag).Msg("constraint violated")
			return false, nil
		}
	}
	return true, nil
}
