// Package errs defines the error categories used throughout the gadget
// construction and execution engine: construction errors (programmer
// misuse, surfaced as panics since they are not recoverable), execution
// errors, and the constraint-unsatisfied outcome that is reported as a
// plain bool rather than an error.
package errs

import "github.com/pkg/errors"

// Construction-time sentinel errors. These are wrapped into panics by the
// builder, matching the teacher's own treatment of misuse (e.g. dividing
// or inverting a known-zero constant): they indicate a bug in the caller,
// not a property of the witness.
var (
	// ErrFieldMismatch is raised when expressions or wires from different
	// fields are mixed in a single operation.
	ErrFieldMismatch = errors.New("r1cs: expressions belong to different fields")

	// ErrWidthExceedsField is raised by Split (and anything built on it)
	// when the requested width exceeds the field's bit length.
	ErrWidthExceedsField = errors.New("r1cs: split width exceeds field bit length")

	// ErrWidthMismatch is raised by binary operations given operands of
	// unequal width.
	ErrWidthMismatch = errors.New("r1cs: binary expressions have mismatched widths")

	// ErrEmptySequence is raised by permutation/sort/Merkle operations
	// given a zero-length input sequence.
	ErrEmptySequence = errors.New("r1cs: operation requires a non-empty sequence")

	// ErrLengthMismatch is raised by assert_permutation when its two
	// operand sequences have different lengths.
	ErrLengthMismatch = errors.New("r1cs: sequences have different lengths")
)

// Execution-time sentinel errors. executor.Executor.Run reports these as part of
// its (bool, error) result rather than panicking, since an honest caller
// can hit them with a merely invalid (rather than malformed) witness.
var (
	// ErrSchedulerStuck is returned when the ready-queue scheduler
	// terminates with unresolved generators remaining: a mis-specified
	// dependency or a cyclic gadget.
	ErrSchedulerStuck = errors.New("r1cs: witness generation stuck")

	// ErrGeneratorFailed wraps an error surfaced by a generator's run
	// function (e.g. inverting zero).
	ErrGeneratorFailed = errors.New("r1cs: generator failed")

	// ErrConflictingAssignment names the category of two generators
	// disagreeing on the value of the same wire. No function in this
	// module returns it: wire.Values.Set reports such a conflict as
	// wire.ErrAlreadyBound.
	ErrConflictingAssignment = errors.New("r1cs: conflicting wire assignment")
)
