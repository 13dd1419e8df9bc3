package fba

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/gofba/linprog"
)

const (
	// NumFluxes is the number of flux variables X1..X15.
	NumFluxes = 15
	// NumMetabolites is the number of mass-balance equations.
	NumMetabolites = 13
)

// Indices of the output fluxes in the value vector.
const (
	IndexP = 11 // X12
	IndexN = 13 // X14
	IndexQ = 14 // X15
)

// objective selects P, N and Q; negated because the solver minimizes.
var objective = [NumFluxes]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0, -1, -1}

// stoichiometry is the mass-balance matrix of the network. The values are
// taken as given; their biochemical reading is not recoverable.
var stoichiometry = [NumMetabolites][NumFluxes]float64{
	{1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0, -1},
	{0, 0, 0, 0, 0, 1, -1, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, -1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, -1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, -1, 0, -1, 0},
	{0, 0, 1, 0, 0, 0, -1, 0, -1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, -1, 0, 0, 0, -1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0},
}

// bounds holds the flux limits X1..X15.
var bounds = [NumFluxes]Bound{
	Between(0, 1700), // X1
	AtLeast(300),     // X2
	Free(),           // X3
	Between(0, 700),  // X4
	Free(),           // X5
	Free(),           // X6
	Free(),           // X7
	Free(),           // X8
	Free(),           // X9
	Free(),           // X10
	AtMost(1100),     // X11
	Free(),           // X12
	Free(),           // X13
	AtMost(500),      // X14
	AtMost(1100),     // X15
}

// Bound is the admissible range of one flux. An infinite Lower or Upper
// means the flux is unrestricted in that direction.
type Bound struct {
	Lower float64
	Upper float64
}

// Free returns a bound that does not restrict the flux.
func Free() Bound {
	return Bound{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Between returns the closed range [lower, upper].
func Between(lower, upper float64) Bound {
	return Bound{Lower: lower, Upper: upper}
}

// AtLeast returns [lower, +∞).
func AtLeast(lower float64) Bound {
	return Bound{Lower: lower, Upper: math.Inf(1)}
}

// AtMost returns (-∞, upper].
func AtMost(upper float64) Bound {
	return Bound{Lower: math.Inf(-1), Upper: upper}
}

// HasLower reports whether the bound has a finite lower limit.
func (b Bound) HasLower() bool { return !math.IsInf(b.Lower, -1) }

// HasUpper reports whether the bound has a finite upper limit.
func (b Bound) HasUpper() bool { return !math.IsInf(b.Upper, 1) }

// Contains reports whether v lies within the bound, widened by tol.
func (b Bound) Contains(v, tol float64) bool {
	return v >= b.Lower-tol && v <= b.Upper+tol
}

func (b Bound) String() string {
	lo, up := "None", "None"
	if b.HasLower() {
		lo = fmt.Sprint(b.Lower)
	}
	if b.HasUpper() {
		up = fmt.Sprint(b.Upper)
	}
	return "(" + lo + ", " + up + ")"
}

// Problem is the LP
//
//	minimize Objective·x  s.t.  Equality·x = RHS,  Bounds[i].Lower ≤ x[i] ≤ Bounds[i].Upper
type Problem struct {
	Objective []float64
	Equality  [][]float64
	RHS       []float64
	Bounds    []Bound
}

// Default returns a fresh copy of the compiled-in network.
func Default() Problem {
	p := Problem{
		Objective: make([]float64, NumFluxes),
		Equality:  make([][]float64, NumMetabolites),
		RHS:       make([]float64, NumMetabolites),
		Bounds:    make([]Bound, NumFluxes),
	}
	copy(p.Objective, objective[:])
	copy(p.Bounds, bounds[:])
	for i := range stoichiometry {
		p.Equality[i] = make([]float64, NumFluxes)
		copy(p.Equality[i], stoichiometry[i][:])
	}
	return p
}

// Clone returns a deep copy of p.
func (p Problem) Clone() Problem {
	c := Problem{
		Objective: append([]float64(nil), p.Objective...),
		Equality:  make([][]float64, len(p.Equality)),
		RHS:       append([]float64(nil), p.RHS...),
		Bounds:    append([]Bound(nil), p.Bounds...),
	}
	for i, row := range p.Equality {
		c.Equality[i] = append([]float64(nil), row...)
	}
	return c
}

// WithBound returns a copy of p with the bound of flux i (zero-based)
// replaced. It panics if i is out of range.
func (p Problem) WithBound(i int, b Bound) Problem {
	c := p.Clone()
	c.Bounds[i] = b
	return c
}

// Names returns the flux labels X1..Xn.
func (p Problem) Names() []string {
	names := make([]string, len(p.Objective))
	for i := range names {
		names[i] = fmt.Sprintf("X%d", i+1)
	}
	return names
}

// Validate checks that the dimensions of p agree.
func (p Problem) Validate() error {
	n := len(p.Objective)
	if n == 0 {
		return errors.Wrap(ErrDimension, "empty objective")
	}
	if len(p.Bounds) != n {
		return errors.Wrapf(ErrDimension, "%d bounds for %d fluxes", len(p.Bounds), n)
	}
	if len(p.RHS) != len(p.Equality) {
		return errors.Wrapf(ErrDimension, "%d right-hand sides for %d equations", len(p.RHS), len(p.Equality))
	}
	for i, row := range p.Equality {
		if len(row) != n {
			return errors.Wrapf(ErrDimension, "equation %d has %d coefficients, want %d", i+1, len(row), n)
		}
	}
	for i, b := range p.Bounds {
		if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) {
			return errors.Wrapf(ErrDimension, "bound of X%d is NaN", i+1)
		}
	}
	return nil
}

// Model returns p as a linprog model: minimize Objective·x subject to the
// equalities and column bounds.
func (p Problem) Model() *linprog.Model {
	m := &linprog.Model{
		ColCosts: append([]float64(nil), p.Objective...),
		ColLower: make([]float64, len(p.Bounds)),
		ColUpper: make([]float64, len(p.Bounds)),
	}
	for i, b := range p.Bounds {
		m.ColLower[i] = b.Lower
		m.ColUpper[i] = b.Upper
	}
	for i, row := range p.Equality {
		m.AddEqRow(row, p.RHS[i])
	}
	return m
}
