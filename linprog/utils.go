package linprog

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

// nonzerosToDense converts a slice of Nonzero elements to a dense rows×cols
// matrix. Duplicate entries keep the last value.
func nonzerosToDense(rows, cols int, nz []Nonzero) (*mat.Dense, error) {
	if rows == 0 || cols == 0 {
		if len(nz) != 0 {
			return nil, newErrorMsg("nonzerosToDense", "entries in an empty matrix")
		}
		return nil, nil
	}

	// Stable order so that "last one wins" is well defined for duplicates.
	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	a := mat.NewDense(rows, cols, nil)
	for _, n := range sorted {
		if n.Row < 0 || n.Col < 0 {
			return nil, newErrorMsg("nonzerosToDense", "negative row or column index")
		}
		if n.Row >= rows || n.Col >= cols {
			return nil, newErrorMsg("nonzerosToDense", "index out of range")
		}
		a.Set(n.Row, n.Col, n.Val)
	}
	return a, nil
}

// expandSlice expands a slice to length n if it's empty, filling with fillValue.
// Returns the original slice if it already has length n.
// Returns an error if the slice has a non-zero length that differs from n.
func expandSlice(n int, slice []float64, fillValue float64) ([]float64, error) {
	if len(slice) == n {
		return slice, nil
	}
	if len(slice) == 0 {
		result := make([]float64, n)
		for i := range result {
			result[i] = fillValue
		}
		return result, nil
	}
	return nil, newErrorMsg("expandSlice", "inconsistent slice length")
}

// maxRowCol finds the maximum row and column indices from a slice of nonzeros.
func maxRowCol(nz []Nonzero) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for _, n := range nz {
		if n.Row > maxRow {
			maxRow = n.Row
		}
		if n.Col > maxCol {
			maxCol = n.Col
		}
	}
	return maxRow, maxCol
}

func hasNaN(s []float64) bool {
	return floats.HasNaN(s)
}

// checkFinite rejects objective and matrix data that is NaN or infinite.
// Bounds are allowed to be infinite and are checked separately.
func checkFinite(offset float64, costs []float64, nz []Nonzero) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return newErrorMsg("Solve", "non-finite Offset")
	}
	for _, c := range costs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return newErrorMsg("Solve", "non-finite ColCosts entry")
		}
	}
	for _, n := range nz {
		if math.IsNaN(n.Val) || math.IsInf(n.Val, 0) {
			return newErrorMsg("Solve", "non-finite ConstMatrix entry")
		}
	}
	return nil
}

func dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// rowActivity returns A·x, or nil when the model has no rows.
func rowActivity(a *mat.Dense, x []float64) []float64 {
	if a == nil {
		return nil
	}
	r, _ := a.Dims()
	out := make([]float64, r)
	mat.NewVecDense(r, out).MulVec(a, mat.NewVecDense(len(x), x))
	return out
}
