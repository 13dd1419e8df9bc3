package linprog

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// colKind describes how an original column maps onto non-negative
// standard-form variables.
type colKind int

const (
	colFixed colKind = iota // x = shift
	colLower                // x = shift + y
	colUpper                // x = shift - y
	colFree                 // x = y - y'
	colBoxed                // x = shift + y, with y + s = upper - lower
)

type colMap struct {
	kind  colKind
	shift float64
	pos   int // index of y, -1 for fixed columns
	neg   int // index of y' for free columns, -1 otherwise
}

// stdRow is one equality row of the standard form in sparse representation.
type stdRow struct {
	idx []int
	val []float64
	rhs float64
}

func (r *stdRow) add(col int, v float64) {
	if v == 0 {
		return
	}
	r.idx = append(r.idx, col)
	r.val = append(r.val, v)
}

// standardForm is the model rewritten as
//
//	minimize c·y  s.t.  A·y = b, y ≥ 0
//
// together with the mapping needed to recover the original point.
type standardForm struct {
	c    []float64
	a    *mat.Dense
	b    []float64
	cols []colMap
}

// standardize rewrites a minimization model into standard form. Bounds that
// make the model trivially infeasible are reported through the returned
// status; ModelStatusNotSet means the standard form is usable.
func standardize(costs, lower, upper []float64, a *mat.Dense, rowLower, rowUpper []float64) (*standardForm, ModelStatus) {
	n := 0
	cols := make([]colMap, len(costs))
	var boxed []int
	for j := range costs {
		l, u := lower[j], upper[j]
		if l > u {
			return nil, ModelStatusInfeasible
		}
		lowInf, upInf := math.IsInf(l, -1), math.IsInf(u, 1)
		if math.IsInf(l, 1) || math.IsInf(u, -1) {
			return nil, ModelStatusInfeasible
		}
		switch {
		case lowInf && upInf:
			cols[j] = colMap{kind: colFree, pos: n, neg: n + 1}
			n += 2
		case upInf:
			cols[j] = colMap{kind: colLower, shift: l, pos: n, neg: -1}
			n++
		case lowInf:
			cols[j] = colMap{kind: colUpper, shift: u, pos: n, neg: -1}
			n++
		case l == u:
			cols[j] = colMap{kind: colFixed, shift: l, pos: -1, neg: -1}
		default:
			cols[j] = colMap{kind: colBoxed, shift: l, pos: n, neg: -1}
			boxed = append(boxed, j)
			n++
		}
	}

	var rows []stdRow
	numRow := len(rowLower)
	for i := 0; i < numRow; i++ {
		lo, up := rowLower[i], rowUpper[i]
		if lo > up || math.IsInf(lo, 1) || math.IsInf(up, -1) {
			return nil, ModelStatusInfeasible
		}
		if math.IsInf(lo, -1) && math.IsInf(up, 1) {
			continue
		}

		var r stdRow
		var adj float64
		for j, cm := range cols {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			adj += v * cm.shift
			switch cm.kind {
			case colLower, colBoxed:
				r.add(cm.pos, v)
			case colUpper:
				r.add(cm.pos, -v)
			case colFree:
				r.add(cm.pos, v)
				r.add(cm.neg, -v)
			}
		}

		switch {
		case lo == up:
			r.rhs = lo - adj
			rows = append(rows, r)
		case math.IsInf(up, 1):
			r.add(n, -1)
			n++
			r.rhs = lo - adj
			rows = append(rows, r)
		case math.IsInf(lo, -1):
			r.add(n, 1)
			n++
			r.rhs = up - adj
			rows = append(rows, r)
		default:
			// Ranged row: a·x - s = lo, s + t = up - lo.
			s := n
			r.add(s, -1)
			r.rhs = lo - adj
			rows = append(rows, r)
			var width stdRow
			width.add(s, 1)
			width.add(s+1, 1)
			width.rhs = up - lo
			rows = append(rows, width)
			n += 2
		}
	}

	for _, j := range boxed {
		var r stdRow
		r.add(cols[j].pos, 1)
		r.add(n, 1)
		r.rhs = upper[j] - lower[j]
		rows = append(rows, r)
		n++
	}

	c := make([]float64, n)
	for j, cm := range cols {
		switch cm.kind {
		case colLower, colBoxed:
			c[cm.pos] = costs[j]
		case colUpper:
			c[cm.pos] = -costs[j]
		case colFree:
			c[cm.pos] = costs[j]
			c[cm.neg] = -costs[j]
		}
	}

	sf := &standardForm{c: c, cols: cols, b: make([]float64, len(rows))}
	for i, r := range rows {
		sf.b[i] = r.rhs
	}
	// Rows over fixed columns only stay as zero rows; presolve decides them.
	if len(rows) > 0 && n > 0 {
		sf.a = mat.NewDense(len(rows), n, nil)
		for i, r := range rows {
			for k, col := range r.idx {
				sf.a.Set(i, col, r.val[k])
			}
		}
	}
	return sf, ModelStatusNotSet
}

// numCols returns the number of standard-form variables.
func (sf *standardForm) numCols() int {
	return len(sf.c)
}

// at returns A[i][j] of the standard form.
func (sf *standardForm) at(i, j int) float64 {
	if sf.a == nil {
		return 0
	}
	return sf.a.At(i, j)
}

// original maps a standard-form point back onto the original columns.
func (sf *standardForm) original(y []float64) []float64 {
	x := make([]float64, len(sf.cols))
	for j, cm := range sf.cols {
		switch cm.kind {
		case colFixed:
			x[j] = cm.shift
		case colLower, colBoxed:
			x[j] = cm.shift + y[cm.pos]
		case colUpper:
			x[j] = cm.shift - y[cm.pos]
		case colFree:
			x[j] = y[cm.pos] - y[cm.neg]
		}
	}
	return x
}
