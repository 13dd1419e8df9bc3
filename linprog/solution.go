package linprog

import "math"

// Solution contains the results from solving a model.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status ModelStatus

	// ColValues contains the primal solution values for each column (variable).
	// Nil unless the status is optimal.
	ColValues []float64

	// RowValues contains the activity A·x of each row (constraint).
	// Nil unless the status is optimal.
	RowValues []float64

	// Objective is the value of the objective function at the solution,
	// or NaN if there is no solution.
	Objective float64
}

func newSolution(status ModelStatus) *Solution {
	return &Solution{Status: status, Objective: math.NaN()}
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.Status == ModelStatusOptimal
}

// IsInfeasible returns true if the model is infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == ModelStatusInfeasible
}

// IsUnbounded returns true if the model is unbounded.
func (s *Solution) IsUnbounded() bool {
	return s.Status == ModelStatusUnbounded
}

// HasSolution returns true if the solution contains valid values.
func (s *Solution) HasSolution() bool {
	return s.Status.HasSolution()
}

// Value returns the solution value for a variable by index.
// Returns 0 if the index is out of range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.ColValues) {
		return 0
	}
	return s.ColValues[index]
}

// Message returns a one-line description of the outcome.
func (s *Solution) Message() string {
	switch s.Status {
	case ModelStatusOptimal:
		return "Optimization terminated successfully."
	case ModelStatusInfeasible:
		return "The problem is infeasible."
	case ModelStatusUnbounded:
		return "The problem is unbounded."
	default:
		return "Solver failed: " + s.Status.String()
	}
}
