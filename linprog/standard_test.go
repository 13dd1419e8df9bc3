package linprog

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStandardizeColumnKinds(t *testing.T) {
	costs := []float64{1, 2, 3, 4, 5}
	lower := []float64{NegInf(), 1, NegInf(), 2, 0}
	upper := []float64{Inf(), Inf(), 6, 2, 4}
	a := mat.NewDense(1, 5, []float64{1, 1, 1, 1, 1})

	sf, status := standardize(costs, lower, upper, a, []float64{10}, []float64{10})
	require.Equal(t, ModelStatusNotSet, status)

	kinds := make([]colKind, len(sf.cols))
	for j, cm := range sf.cols {
		kinds[j] = cm.kind
	}
	assert.Equal(t, []colKind{colFree, colLower, colUpper, colFixed, colBoxed}, kinds)

	// free(2) + lower(1) + upper(1) + boxed(1) + boxed slack(1)
	assert.Equal(t, 6, sf.numCols())
	assert.Equal(t, []float64{1, -1, 2, -3, 5, 0}, sf.c)

	// Row 0: y0 - y0' + y1 - y2 + y3 = 10 - (1 + 6 + 2 + 0)
	require.Len(t, sf.b, 2)
	assert.Equal(t, 1.0, sf.b[0])
	assert.Equal(t, []float64{1, -1, 1, -1, 1, 0}, mat.Row(nil, 0, sf.a))
	// Row 1: y4 + s = 4
	assert.Equal(t, 4.0, sf.b[1])
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 1}, mat.Row(nil, 1, sf.a))

	x := sf.original([]float64{3, 1, 2, 0.5, 1.5, 2.5})
	assert.Equal(t, []float64{2, 3, 5.5, 2, 1.5}, x)
}

func TestStandardizeRowKinds(t *testing.T) {
	costs := []float64{1}
	lower := []float64{0}
	upper := []float64{Inf()}
	a := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	rowLower := []float64{1, NegInf(), 2, NegInf()}
	rowUpper := []float64{Inf(), 5, 3, Inf()}

	sf, status := standardize(costs, lower, upper, a, rowLower, rowUpper)
	require.Equal(t, ModelStatusNotSet, status)

	// The free row is skipped, the ranged row adds a width row.
	assert.Equal(t, []float64{1, 5, 2, 1}, sf.b)
	assert.Equal(t, 5, sf.numCols())
	assert.Equal(t, []float64{1, -1, 0, 0, 0}, mat.Row(nil, 0, sf.a))
	assert.Equal(t, []float64{1, 0, 1, 0, 0}, mat.Row(nil, 1, sf.a))
	assert.Equal(t, []float64{1, 0, 0, -1, 0}, mat.Row(nil, 2, sf.a))
	assert.Equal(t, []float64{0, 0, 0, 1, 1}, mat.Row(nil, 3, sf.a))
}

func TestStandardizeRejectsCrossedBounds(t *testing.T) {
	_, status := standardize([]float64{0}, []float64{1}, []float64{0}, nil, nil, nil)
	assert.Equal(t, ModelStatusInfeasible, status)

	a := mat.NewDense(1, 1, []float64{1})
	_, status = standardize([]float64{0}, []float64{0}, []float64{1}, a, []float64{3}, []float64{2})
	assert.Equal(t, ModelStatusInfeasible, status)

	_, status = standardize([]float64{0}, []float64{math.Inf(1)}, []float64{math.Inf(1)}, nil, nil, nil)
	assert.Equal(t, ModelStatusInfeasible, status)
}

func TestPresolveDropsDependentRowsAndEmptyColumns(t *testing.T) {
	sf := &standardForm{
		c: []float64{1, 1, -2, 0},
		a: mat.NewDense(3, 4, []float64{
			1, 1, 0, 0,
			0, 1, 0, 1,
			1, 2, 0, 1, // row 0 + row 1
		}),
		b: []float64{2, 3, 5},
	}

	rf, status := presolve(sf, DefaultTolerance)
	require.Equal(t, ModelStatusNotSet, status)
	assert.Equal(t, []int{0, 1}, rf.rows)
	assert.Equal(t, []int{0, 1, 3}, rf.cols)
	assert.True(t, rf.improving)
	assert.Equal(t, []float64{1, 1, 0}, rf.c)
	assert.Equal(t, []float64{2, 3}, rf.b)

	sf.b[2] = 6
	_, status = presolve(sf, DefaultTolerance)
	assert.Equal(t, ModelStatusInfeasible, status)
}

func TestPresolveEmptyRow(t *testing.T) {
	sf := &standardForm{
		c: []float64{1},
		a: mat.NewDense(2, 1, []float64{1, 0}),
		b: []float64{1, 0},
	}
	rf, status := presolve(sf, DefaultTolerance)
	require.Equal(t, ModelStatusNotSet, status)
	assert.Equal(t, []int{0}, rf.rows)

	sf.b[1] = 1
	_, status = presolve(sf, DefaultTolerance)
	assert.Equal(t, ModelStatusInfeasible, status)
}

func TestNonzerosToDense(t *testing.T) {
	a, err := nonzerosToDense(2, 3, []Nonzero{
		{1, 2, 4},
		{0, 0, 1},
		{1, 2, 5}, // duplicate, last one wins
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, mat.Row(nil, 0, a))
	assert.Equal(t, []float64{0, 0, 5}, mat.Row(nil, 1, a))

	_, err = nonzerosToDense(1, 1, []Nonzero{{0, 3, 1}})
	assert.Error(t, err)
}

func TestWriteLP(t *testing.T) {
	model := Model{
		Maximize: true,
		ColCosts: []float64{1, 0, -2},
		ColLower: []float64{0, NegInf(), 1},
		ColUpper: []float64{4, Inf(), 1},
	}
	model.AddEqRow([]float64{1, -1, 0}, 0)
	model.AddDenseRow(1, []float64{0, 2, 1}, 5)
	model.AddGeRow([]float64{1, 0, 0}, 0.5)

	var sb strings.Builder
	require.NoError(t, model.WriteLP(&sb, []string{"a", "b", "c"}))

	want := `Maximize
 obj: + a - 2 c
Subject To
 c1: + a - b = 0
 c2: 1 <= + 2 b + c <= 5
 c3: + a >= 0.5
Bounds
 0 <= a <= 4
 b free
 c = 1
End
`
	assert.Equal(t, want, sb.String())

	assert.Error(t, model.WriteLP(&sb, []string{"a"}))
}
