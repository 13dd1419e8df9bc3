package linprog

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// rankTol is the relative tolerance below which an eliminated row counts as
// zero when detecting linearly dependent constraints.
const rankTol = 1e-9

// reducedForm is a standard form with empty columns and dependent rows
// removed, ready for the simplex method.
type reducedForm struct {
	c []float64
	a *mat.Dense
	b []float64

	rows  []int // standard-form rows kept
	cols  []int // standard-form columns kept
	total int   // number of standard-form columns

	// improving is set when a dropped empty column has a negative cost,
	// i.e. any feasible point can be improved without limit.
	improving bool
	scale     float64
}

// presolve removes the parts of a standard form that the simplex backend
// cannot handle: columns without entries and rows that are linear
// combinations of earlier rows. Dependent rows with an inconsistent right-hand
// side make the model infeasible.
func presolve(sf *standardForm, tol float64) (*reducedForm, ModelStatus) {
	m, n := len(sf.b), sf.numCols()
	rf := &reducedForm{total: n, scale: 1}

	for i := 0; i < m; i++ {
		rf.scale = math.Max(rf.scale, math.Abs(sf.b[i]))
		for j := 0; j < n; j++ {
			rf.scale = math.Max(rf.scale, math.Abs(sf.at(i, j)))
		}
	}

	for j := 0; j < n; j++ {
		empty := true
		for i := 0; i < m; i++ {
			if sf.at(i, j) != 0 {
				empty = false
				break
			}
		}
		if !empty {
			rf.cols = append(rf.cols, j)
			continue
		}
		if sf.c[j] < -tol {
			rf.improving = true
		}
	}

	// Gaussian elimination with partial pivoting. Each pivot row is normalized
	// so that its pivot entry is one.
	type pivot struct {
		col int
		row []float64
		rhs float64
	}
	var pivots []pivot
	zero := rankTol * rf.scale
	for i := 0; i < m; i++ {
		v := make([]float64, n)
		for j := 0; j < n; j++ {
			v[j] = sf.at(i, j)
		}
		r := sf.b[i]
		for _, p := range pivots {
			if f := v[p.col]; f != 0 {
				floats.AddScaled(v, -f, p.row)
				r -= f * p.rhs
			}
		}

		k, best := -1, zero
		for j, x := range v {
			if math.Abs(x) > best {
				k, best = j, math.Abs(x)
			}
		}
		if k < 0 {
			if math.Abs(r) > zero {
				return nil, ModelStatusInfeasible
			}
			continue
		}
		pv := v[k]
		floats.Scale(1/pv, v)
		v[k] = 1
		pivots = append(pivots, pivot{col: k, row: v, rhs: r / pv})
		rf.rows = append(rf.rows, i)
	}

	rf.c = make([]float64, len(rf.cols))
	for k, j := range rf.cols {
		rf.c[k] = sf.c[j]
	}
	rf.b = make([]float64, len(rf.rows))
	if len(rf.rows) > 0 {
		rf.a = mat.NewDense(len(rf.rows), len(rf.cols), nil)
		for r, i := range rf.rows {
			rf.b[r] = sf.b[i]
			for k, j := range rf.cols {
				rf.a.Set(r, k, sf.at(i, j))
			}
		}
	}
	return rf, ModelStatusNotSet
}

// solve runs the simplex method on the reduced form and returns the full
// standard-form point.
func (rf *reducedForm) solve(tol float64) ([]float64, ModelStatus, error) {
	y := make([]float64, rf.total)
	if len(rf.rows) == 0 {
		// No constraints left means no columns left either.
		if rf.improving {
			return nil, ModelStatusUnbounded, nil
		}
		return y, ModelStatusOptimal, nil
	}

	_, yr, err := lp.Simplex(rf.c, rf.a, rf.b, tol, nil)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return nil, ModelStatusInfeasible, nil
	case errors.Is(err, lp.ErrUnbounded):
		return nil, ModelStatusUnbounded, nil
	default:
		return nil, ModelStatusSolveError, wrapError("simplex", err)
	}
	if rf.improving {
		return nil, ModelStatusUnbounded, nil
	}

	zero := rankTol * rf.scale
	for k, j := range rf.cols {
		v := yr[k]
		if v < 0 && v > -zero {
			v = 0
		}
		y[j] = v
	}
	return y, ModelStatusOptimal, nil
}
