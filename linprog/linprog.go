// Package linprog provides a small linear programming modeling API backed by
// the pure-Go simplex solver in gonum.
//
// The package solves problems of the form
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// Bounds may be infinite in either direction. Before the simplex method runs,
// the model is rewritten into standard form (x ≥ 0, equality rows only) and
// presolved: empty rows and columns are removed and linearly dependent rows
// are dropped, since the underlying solver requires a constraint matrix with
// full row rank.
//
// # Example
//
//	model := linprog.Model{
//		ColCosts: []float64{1.0, 1.0},
//		ColLower: []float64{0.0, 0.0},
//		ColUpper: []float64{10.0, 10.0},
//	}
//	model.AddDenseRow(1.0, []float64{1.0, 1.0}, 5.0) // 1 <= x + y <= 5
//
//	solution, err := model.Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(solution.Message(), solution.ColValues)
package linprog

import "fmt"

// ----------------------------------------------------------------------------
// Types
// ----------------------------------------------------------------------------

// ModelStatus represents the status of a solved model.
type ModelStatus int

const (
	// ModelStatusNotSet indicates the model status has not been set.
	ModelStatusNotSet ModelStatus = iota
	// ModelStatusModelError indicates the model data is inconsistent.
	ModelStatusModelError
	// ModelStatusOptimal indicates an optimal solution was found.
	ModelStatusOptimal
	// ModelStatusInfeasible indicates no point satisfies all constraints.
	ModelStatusInfeasible
	// ModelStatusUnbounded indicates the objective can be improved without limit.
	ModelStatusUnbounded
	// ModelStatusSolveError indicates the solver failed numerically.
	ModelStatusSolveError
)

// String returns a human-readable representation of the model status.
func (s ModelStatus) String() string {
	names := []string{
		"NotSet", "ModelError", "Optimal", "Infeasible", "Unbounded", "SolveError",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOptimal returns true if the model was solved to optimality.
func (s ModelStatus) IsOptimal() bool {
	return s == ModelStatusOptimal
}

// HasSolution returns true if the status carries a primal point.
func (s ModelStatus) HasSolution() bool {
	return s == ModelStatusOptimal
}

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// ----------------------------------------------------------------------------
// Errors
// ----------------------------------------------------------------------------

// Error represents a linprog failure with context about which operation failed.
// Infeasible and unbounded models are not errors; they are reported through
// Solution.Status.
type Error struct {
	Op  string // Operation that failed (e.g., "Solve", "standardize")
	Msg string // Additional context
	Err error  // Underlying cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("linprog: %s failed: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("linprog: %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("linprog: %s failed: %s", e.Op, e.Msg)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// newErrorMsg creates a new Error with a message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Msg: msg}
}

// wrapError creates a new Error around a lower-level failure.
func wrapError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
