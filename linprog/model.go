package linprog

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Model represents a linear program.
//
// The model solves problems of the form:
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// Where A is the constraint matrix specified by ConstMatrix.
type Model struct {
	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	// Offset is a constant added to the objective function.
	Offset float64

	// ColCosts are the objective function coefficients for each variable.
	ColCosts []float64

	// ColLower are the lower bounds for each variable.
	// If empty, defaults to -∞.
	ColLower []float64

	// ColUpper are the upper bounds for each variable.
	// If empty, defaults to +∞.
	ColUpper []float64

	// RowLower are the lower bounds for each constraint.
	// Use NegInf() for no lower bound.
	RowLower []float64

	// RowUpper are the upper bounds for each constraint.
	// Use Inf() for no upper bound.
	RowUpper []float64

	// ConstMatrix defines the constraint matrix as a list of non-zero entries.
	// Each entry specifies (row, column, value).
	ConstMatrix []Nonzero
}

// AddDenseRow adds a constraint to the model using a dense coefficient vector.
// Zero coefficients are automatically filtered out.
//
// Example:
//
//	model.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for col, val := range coeffs {
		if val != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{
				Row: row,
				Col: col,
				Val: val,
			})
		}
	}
}

// AddSparseRow adds a constraint using sparse coefficient representation.
//
// Example:
//
//	model.AddSparseRow(1.0, []int{0, 1, 3}, []float64{1.0, 2.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for i, col := range cols {
		if vals[i] != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{
				Row: row,
				Col: col,
				Val: vals[i],
			})
		}
	}
}

// AddEqRow adds an equality constraint: sum(coeffs * x) = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow adds a less-than-or-equal constraint: sum(coeffs * x) <= rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(math.Inf(-1), coeffs, rhs)
}

// AddGeRow adds a greater-than-or-equal constraint: sum(coeffs * x) >= rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, math.Inf(1))
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int {
	_, maxCol := maxRowCol(m.ConstMatrix)
	n := maxCol + 1
	for _, l := range []int{len(m.ColCosts), len(m.ColLower), len(m.ColUpper)} {
		if l > n {
			n = l
		}
	}
	return n
}

// NumConstraints returns the number of constraints in the model.
func (m *Model) NumConstraints() int {
	maxRow, _ := maxRowCol(m.ConstMatrix)
	n := maxRow + 1
	for _, l := range []int{len(m.RowLower), len(m.RowUpper)} {
		if l > n {
			n = l
		}
	}
	return n
}

// Solve builds and solves the model, returning the solution.
//
// Infeasible and unbounded models are reported through Solution.Status with
// a nil error. An error is returned only for inconsistent model data, with a
// ModelStatusModelError solution, or a numerical failure inside the solver,
// with a ModelStatusSolveError solution.
//
// Options can be set using SolveOptions:
//
//	solution, err := model.Solve(
//		linprog.WithTolerance(1e-9),
//		linprog.WithLogger(logger),
//	)
func (m *Model) Solve(opts ...SolveOption) (*Solution, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.logger()

	// Determine dimensions
	numCol := m.NumVars()
	numRow := m.NumConstraints()

	if numCol == 0 {
		return &Solution{Status: ModelStatusOptimal, Objective: m.Offset}, nil
	}

	// Prepare column data with defaults
	colCosts, err := expandSlice(numCol, m.ColCosts, 0.0)
	if err != nil {
		return modelError(newErrorMsg("Solve", "inconsistent ColCosts length"))
	}
	colLower, err := expandSlice(numCol, m.ColLower, math.Inf(-1))
	if err != nil {
		return modelError(newErrorMsg("Solve", "inconsistent ColLower length"))
	}
	colUpper, err := expandSlice(numCol, m.ColUpper, math.Inf(1))
	if err != nil {
		return modelError(newErrorMsg("Solve", "inconsistent ColUpper length"))
	}

	// Prepare row data with defaults
	rowLower, err := expandSlice(numRow, m.RowLower, math.Inf(-1))
	if err != nil {
		return modelError(newErrorMsg("Solve", "inconsistent RowLower length"))
	}
	rowUpper, err := expandSlice(numRow, m.RowUpper, math.Inf(1))
	if err != nil {
		return modelError(newErrorMsg("Solve", "inconsistent RowUpper length"))
	}

	if err := checkFinite(m.Offset, colCosts, m.ConstMatrix); err != nil {
		return modelError(err)
	}
	if hasNaN(colLower) || hasNaN(colUpper) || hasNaN(rowLower) || hasNaN(rowUpper) {
		return modelError(newErrorMsg("Solve", "NaN bound"))
	}

	a, err := nonzerosToDense(numRow, numCol, m.ConstMatrix)
	if err != nil {
		return modelError(err)
	}

	// The backend minimizes; flip the costs for a maximization.
	costs := make([]float64, numCol)
	copy(costs, colCosts)
	if m.Maximize {
		for i := range costs {
			costs[i] = -costs[i]
		}
	}

	sf, status := standardize(costs, colLower, colUpper, a, rowLower, rowUpper)
	if status != ModelStatusNotSet {
		log.WithField("status", status).Debug("model rejected before simplex")
		return newSolution(status), nil
	}
	sRows, sCols := len(sf.b), sf.numCols()
	log.WithFields(logrus.Fields{
		"cols": numCol, "rows": numRow,
		"std_cols": sCols, "std_rows": sRows,
	}).Debug("built standard form")

	reduced, status := presolve(sf, cfg.tolerance)
	if status != ModelStatusNotSet {
		log.WithField("status", status).Debug("presolve decided model")
		return newSolution(status), nil
	}
	log.WithFields(logrus.Fields{
		"dropped_rows": len(sf.b) - len(reduced.rows),
		"dropped_cols": sCols - len(reduced.cols),
	}).Debug("presolve done")

	y, status, err := reduced.solve(cfg.tolerance)
	if err != nil {
		log.WithError(err).Debug("simplex failed")
		return newSolution(ModelStatusSolveError), err
	}
	if status != ModelStatusOptimal {
		log.WithField("status", status).Debug("simplex finished without optimum")
		return newSolution(status), nil
	}

	x := sf.original(y)
	return &Solution{
		Status:    ModelStatusOptimal,
		ColValues: x,
		RowValues: rowActivity(a, x),
		Objective: dot(colCosts, x) + m.Offset,
	}, nil
}

// modelError pairs a validation failure with a ModelError solution.
func modelError(err error) (*Solution, error) {
	return newSolution(ModelStatusModelError), err
}

// SolveOption configures the solver behavior.
type SolveOption func(*solveConfig)

type solveConfig struct {
	output    bool
	tolerance float64
	log       logrus.FieldLogger
}

// DefaultTolerance is the reduced-cost and presolve tolerance used when no
// WithTolerance option is given.
const DefaultTolerance = 1e-10

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		tolerance: DefaultTolerance,
	}
}

func (c *solveConfig) logger() logrus.FieldLogger {
	if c.output && c.log != nil {
		return c.log
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// WithOutput enables or disables solver log output. Output goes to the
// logger configured with WithLogger, or to the logrus standard logger.
func WithOutput(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.output = enabled
		if enabled && c.log == nil {
			c.log = logrus.StandardLogger()
		}
	}
}

// WithLogger sets the logger used for solver output and enables output.
func WithLogger(log logrus.FieldLogger) SolveOption {
	return func(c *solveConfig) {
		c.log = log
		c.output = log != nil
	}
}

// WithTolerance sets the optimality and presolve tolerance.
// Non-positive values are ignored.
func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) {
		if tol > 0 {
			c.tolerance = tol
		}
	}
}
