package main

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/gofba/fba"
	"github.com/bartolsthoorn/gofba/linprog"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd, err := NewRootCmd(&out, &errOut)
	require.NoError(t, err)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootText(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Optimization Status: Optimization terminated successfully.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Optimal Values for X1 to X15: ["))

	const prefix = "Optimal Value of the Objective Function: "
	require.True(t, strings.HasPrefix(lines[2], prefix))
	obj, err := strconv.ParseFloat(strings.TrimPrefix(lines[2], prefix), 64)
	require.NoError(t, err)
	assert.InDelta(t, -1100.0, obj, 1e-6)
}

func TestRootJSON(t *testing.T) {
	out, _, err := execute(t, "--output", "json")
	require.NoError(t, err)

	var rep fba.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "Optimal", rep.Status)
	assert.Len(t, rep.Fluxes, fba.NumFluxes)
	require.NotNil(t, rep.Objective)
	assert.InDelta(t, -1100.0, *rep.Objective, 1e-6)
}

func TestRootYAMLFromEnv(t *testing.T) {
	t.Setenv("FLUXOPT_OUTPUT", "yaml")

	out, _, err := execute(t)
	require.NoError(t, err)

	var rep fba.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "Optimal", rep.Status)
	assert.NotEmpty(t, rep.RunID)
}

func TestRootDebugLog(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "solving flux network")
	assert.Contains(t, errOut, "presolve done")
}

func TestRootBadFlags(t *testing.T) {
	_, _, err := execute(t, "--output", "xml")
	assert.EqualError(t, err, `unknown output format "xml"`)

	_, _, err = execute(t, "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = execute(t, "extra")
	assert.Error(t, err)
}

func TestModelCmd(t *testing.T) {
	out, _, err := execute(t, "model")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Minimize\n obj: - X12 - X14 - X15\nSubject To\n"))
	assert.Contains(t, out, " c1: + X1 - X2 = 0\n")
	assert.Contains(t, out, " c13: + X13 - X14 = 0\n")
	assert.Contains(t, out, " 0 <= X1 <= 1700\n")
	assert.Contains(t, out, " 300 <= X2 <= +inf\n")
	assert.Contains(t, out, " X3 free\n")
	assert.Contains(t, out, " -inf <= X11 <= 1100\n")
	assert.True(t, strings.HasSuffix(out, "End\n"))
}

func TestModelCmdRejectsSolveFlags(t *testing.T) {
	for _, args := range [][]string{
		{"model", "--output", "json"},
		{"model", "--tolerance", "1e-6"},
		{"model", "--log-level", "debug"},
	} {
		out, _, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
		assert.Empty(t, out)
	}
}

func TestWriteRejectsViolatedResult(t *testing.T) {
	p := fba.Default()
	values := make([]float64, fba.NumFluxes)
	values[0] = 5
	obj := 0.0
	res := fba.Result{
		Status:    linprog.ModelStatusOptimal,
		Message:   "Optimization terminated successfully.",
		Values:    values,
		Objective: &obj,
	}

	var out bytes.Buffer
	c := &rootCmd{out: &out}
	err := c.write(outputText, p, res)
	assert.ErrorIs(t, err, fba.ErrViolation)
	assert.Contains(t, err.Error(), "solution check failed")
	assert.Empty(t, out.String())
}

func TestWritePrintsInfeasibleResult(t *testing.T) {
	p := fba.Default().WithBound(0, fba.Between(0, 200))
	res, err := p.Solve()
	require.NoError(t, err)

	var out bytes.Buffer
	c := &rootCmd{out: &out}
	require.NoError(t, c.write(outputText, p, res))
	assert.Contains(t, out.String(), "Optimization Status: The problem is infeasible.\n")
}
