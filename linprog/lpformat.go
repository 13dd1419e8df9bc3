package linprog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteLP writes the model in CPLEX LP text format. names, if non-nil, must
// have one entry per variable; otherwise variables are named x1, x2, ...
func (m *Model) WriteLP(w io.Writer, names []string) error {
	numCol := m.NumVars()
	numRow := m.NumConstraints()
	if names != nil && len(names) != numCol {
		return newErrorMsg("WriteLP", "names length does not match number of variables")
	}
	name := func(j int) string {
		if names != nil {
			return names[j]
		}
		return "x" + strconv.Itoa(j+1)
	}

	colCosts, err := expandSlice(numCol, m.ColCosts, 0.0)
	if err != nil {
		return newErrorMsg("WriteLP", "inconsistent ColCosts length")
	}
	colLower, err := expandSlice(numCol, m.ColLower, math.Inf(-1))
	if err != nil {
		return newErrorMsg("WriteLP", "inconsistent ColLower length")
	}
	colUpper, err := expandSlice(numCol, m.ColUpper, math.Inf(1))
	if err != nil {
		return newErrorMsg("WriteLP", "inconsistent ColUpper length")
	}
	rowLower, err := expandSlice(numRow, m.RowLower, math.Inf(-1))
	if err != nil {
		return newErrorMsg("WriteLP", "inconsistent RowLower length")
	}
	rowUpper, err := expandSlice(numRow, m.RowUpper, math.Inf(1))
	if err != nil {
		return newErrorMsg("WriteLP", "inconsistent RowUpper length")
	}
	a, err := nonzerosToDense(numRow, numCol, m.ConstMatrix)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if m.Maximize {
		fmt.Fprintln(bw, "Maximize")
	} else {
		fmt.Fprintln(bw, "Minimize")
	}
	fmt.Fprint(bw, " obj:")
	fmt.Fprint(bw, linearExpr(colCosts, name))
	if m.Offset != 0 {
		fmt.Fprint(bw, " "+signedTerm(m.Offset, ""))
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Subject To")
	row := make([]float64, numCol)
	for i := 0; i < numRow; i++ {
		lo, up := rowLower[i], rowUpper[i]
		if math.IsInf(lo, -1) && math.IsInf(up, 1) {
			continue
		}
		for j := range row {
			row[j] = a.At(i, j)
		}
		expr := linearExpr(row, name)
		label := fmt.Sprintf(" c%d:", i+1)
		switch {
		case lo == up:
			fmt.Fprintf(bw, "%s%s = %s\n", label, expr, formatNum(lo))
		case math.IsInf(up, 1):
			fmt.Fprintf(bw, "%s%s >= %s\n", label, expr, formatNum(lo))
		case math.IsInf(lo, -1):
			fmt.Fprintf(bw, "%s%s <= %s\n", label, expr, formatNum(up))
		default:
			fmt.Fprintf(bw, "%s %s <=%s <= %s\n", label, formatNum(lo), expr, formatNum(up))
		}
	}

	fmt.Fprintln(bw, "Bounds")
	for j := 0; j < numCol; j++ {
		lo, up := colLower[j], colUpper[j]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(up, 1):
			fmt.Fprintf(bw, " %s free\n", name(j))
		case lo == up:
			fmt.Fprintf(bw, " %s = %s\n", name(j), formatNum(lo))
		default:
			fmt.Fprintf(bw, " %s <= %s <= %s\n", formatBound(lo), name(j), formatBound(up))
		}
	}
	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

func linearExpr(coeffs []float64, name func(int) string) string {
	var s string
	for j, c := range coeffs {
		if c == 0 {
			continue
		}
		s += " " + signedTerm(c, name(j))
	}
	if s == "" {
		return " 0"
	}
	return s
}

func signedTerm(c float64, variable string) string {
	sign := "+"
	if c < 0 {
		sign = "-"
		c = -c
	}
	switch {
	case variable == "":
		return sign + " " + formatNum(c)
	case c == 1:
		return sign + " " + variable
	default:
		return sign + " " + formatNum(c) + " " + variable
	}
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return formatNum(v)
	}
}
