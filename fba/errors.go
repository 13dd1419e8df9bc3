package fba

import "github.com/pkg/errors"

// Sentinel errors.
var (
	// ErrInfeasible means no flux vector satisfies every balance and bound.
	ErrInfeasible = errors.New("fba: problem is infeasible")
	// ErrUnbounded means the output can be increased without limit.
	ErrUnbounded = errors.New("fba: problem is unbounded")
	// ErrNoSolution covers any other outcome without an optimal point.
	ErrNoSolution = errors.New("fba: no solution")
	// ErrDimension means the problem data has inconsistent sizes.
	ErrDimension = errors.New("fba: dimension mismatch")
	// ErrViolation means a reported solution does not satisfy the problem.
	ErrViolation = errors.New("fba: constraint violated")
)
