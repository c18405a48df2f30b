// SPDX-License-Identifier: MIT

package setcover

import "errors"

// Sentinel errors. Callers branch with errors.Is; context is attached with
// %w and a method prefix, e.g. "Solve: universe is nil: setcover: invalid input".
//
// Partial coverage is not an error and has no sentinel.
var (
	// ErrInvalidInput indicates a structurally unusable input, such as a nil universe.
	ErrInvalidInput = errors.New("setcover: invalid input")

	// ErrInvalidOptions indicates an Options value outside its domain.
	ErrInvalidOptions = errors.New("setcover: invalid options")

	// ErrDimensionMismatch indicates len(costs) != len(candidates).
	ErrDimensionMismatch = errors.New("setcover: dimension mismatch")

	// ErrInvalidCost indicates a NaN, infinite, zero or negative candidate cost.
	ErrInvalidCost = errors.New("setcover: invalid cost")

	// ErrIndexOutOfRange indicates a chosen index outside [0, len(candidates)).
	ErrIndexOutOfRange = errors.New("setcover: candidate index out of range")

	// ErrDuplicatePick indicates a candidate chosen more than once.
	ErrDuplicatePick = errors.New("setcover: candidate chosen twice")

	// ErrCoverMismatch indicates that Covered differs from the union of the chosen candidates.
	ErrCoverMismatch = errors.New("setcover: covered set does not match chosen candidates")
)

// Method tags used as error prefixes.
const (
	methodSolve         = "Solve"
	methodSolveWeighted = "SolveWeighted"
	methodVerify        = "Verify"
)
