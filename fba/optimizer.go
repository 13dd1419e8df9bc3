package fba

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/bartolsthoorn/gofba/linprog"
)

// Result is the outcome of one solve.
type Result struct {
	// Status is the solver outcome.
	Status linprog.ModelStatus
	// Message describes Status in one line.
	Message string
	// Values holds X1..X15 at the optimum; nil unless Status is optimal.
	Values []float64
	// Objective is Objective·Values; nil unless Status is optimal.
	Objective *float64
}

// Optimal reports whether the result carries an optimal point.
func (r Result) Optimal() bool {
	return r.Status.IsOptimal() && r.Values != nil && r.Objective != nil
}

// Err returns nil for an optimal result, otherwise the sentinel error that
// matches the status.
func (r Result) Err() error {
	switch {
	case r.Optimal():
		return nil
	case r.Status == linprog.ModelStatusInfeasible:
		return ErrInfeasible
	case r.Status == linprog.ModelStatusUnbounded:
		return ErrUnbounded
	default:
		return errors.Wrap(ErrNoSolution, r.Status.String())
	}
}

// Production is the value of the three output fluxes.
type Production struct {
	P float64 `json:"p" yaml:"p"`
	N float64 `json:"n" yaml:"n"`
	Q float64 `json:"q" yaml:"q"`
}

// Total returns P + N + Q.
func (p Production) Total() float64 {
	return p.P + p.N + p.Q
}

// Production returns the output fluxes, or false if the result has no point.
func (r Result) Production() (Production, bool) {
	if !r.Optimal() || len(r.Values) <= IndexQ {
		return Production{}, false
	}
	return Production{
		P: r.Values[IndexP],
		N: r.Values[IndexN],
		Q: r.Values[IndexQ],
	}, true
}

// Solve solves the compiled-in network.
func Solve(opts ...linprog.SolveOption) (Result, error) {
	return Default().Solve(opts...)
}

// Solve solves p. Infeasible and unbounded problems yield a Result without
// values and a nil error; an error is returned only for malformed problem
// data or a solver failure.
func (p Problem) Solve(opts ...linprog.SolveOption) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	sol, err := p.Model().Solve(opts...)
	if err != nil {
		return Result{}, errors.Wrap(err, "fba: solve")
	}

	res := Result{
		Status:  sol.Status,
		Message: sol.Message(),
	}
	if sol.IsOptimal() {
		res.Values = sol.ColValues
		obj := sol.Objective
		res.Objective = &obj
	}
	return res, nil
}

// Verify checks that an optimal result satisfies p within tol: every
// balance holds, every flux is inside its bound and the objective matches
// Objective·Values. A non-optimal result returns its Err.
func (p Problem) Verify(r Result, tol float64) error {
	if err := r.Err(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	n := len(p.Objective)
	if len(r.Values) != n {
		return errors.Wrapf(ErrDimension, "%d values for %d fluxes", len(r.Values), n)
	}

	if m := len(p.Equality); m > 0 {
		data := make([]float64, 0, m*n)
		for _, row := range p.Equality {
			data = append(data, row...)
		}
		a := mat.NewDense(m, n, data)
		residual := make([]float64, m)
		mat.NewVecDense(m, residual).MulVec(a, mat.NewVecDense(n, r.Values))
		floats.Sub(residual, p.RHS)
		for i, v := range residual {
			if math.Abs(v) > tol {
				return errors.Wrapf(ErrViolation, "balance %d off by %g", i+1, v)
			}
		}
	}

	for i, b := range p.Bounds {
		if !b.Contains(r.Values[i], tol) {
			return errors.Wrapf(ErrViolation, "X%d = %g outside %s", i+1, r.Values[i], b)
		}
	}

	want := floats.Dot(p.Objective, r.Values)
	if !scalar.EqualWithinAbsOrRel(*r.Objective, want, tol, tol) {
		return errors.Wrapf(ErrViolation, "objective %g, c·x = %g", *r.Objective, want)
	}
	return nil
}
