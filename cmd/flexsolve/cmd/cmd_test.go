package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/flexsolve/bounded"
	"github.com/katalvlaran/flexsolve/expr"
	"github.com/katalvlaran/flexsolve/iterative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestSolveFixed(t *testing.T) {
	out, _, err := execute(t, "solve", "fixed", "--expr", "cos(x)", "--x0", "0.5", "--xtol", "1e-12")
	require.NoError(t, err)
	assert.Contains(t, out, "x = 0.73908513321")
}

func TestSolveFixed_System(t *testing.T) {
	out, _, err := execute(t, "solve", "fixed", "-e", "0.5*x1 + 1", "-e", "0.25*x0 + 2", "--method", "aitken")
	require.NoError(t, err)
	assert.Contains(t, out, "x0 = 2.2857142857")
	assert.Contains(t, out, "x1 = 2.5714285714")
}

func TestSolveFixed_Conditional(t *testing.T) {
	out, _, err := execute(t, "solve", "fixed", "--expr", "sqrt(x + 2)", "--conditional", "--xtol", "1e-12")
	require.NoError(t, err)
	assert.Contains(t, out, "x = 2")
}

func TestSolveFixed_Errors(t *testing.T) {
	_, _, err := execute(t, "solve", "fixed", "--expr", "cos(x)", "--method", "newton")
	assert.ErrorIs(t, err, iterative.ErrUnknownMethod)

	_, _, err = execute(t, "solve", "fixed", "--expr", "cos(x)", "--x0", "1,2")
	assert.ErrorContains(t, err, "--x0 has 2 values")

	_, _, err = execute(t, "solve", "fixed", "--expr", "x + 1", "--maxiter", "5")
	assert.ErrorIs(t, err, iterative.ErrNotConverged)

	_, _, err = execute(t, "solve", "fixed")
	assert.ErrorContains(t, err, "expr")
}

func TestSolveRoot(t *testing.T) {
	for _, m := range bounded.Methods() {
		t.Run(m.String(), func(t *testing.T) {
			out, _, err := execute(t, "solve", "root", "--expr", "x**3 - 2", "--lower", "1", "--upper", "2", "--method", m.String())
			require.NoError(t, err)
			assert.Contains(t, out, "x = 1.259921")
			assert.Contains(t, out, "f(x) = ")
		})
	}
}

func TestSolveRoot_VerboseLogsSteps(t *testing.T) {
	out, errOut, err := execute(t, "-v", "solve", "root", "-e", "exp(x)", "--yval", "5", "--lower", "0", "--upper", "3", "--guess", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "x = 1.609437912")
	assert.Contains(t, errOut, "iq-interpolation eval 1: f(1)=")
}

func TestSolveRoot_Errors(t *testing.T) {
	_, _, err := execute(t, "solve", "root", "--expr", "x*x", "--lower", "1", "--upper", "2")
	assert.ErrorIs(t, err, bounded.ErrNotBracketed)

	_, _, err = execute(t, "solve", "root", "--expr", "sqrt(x)", "--lower", "-1", "--upper", "2")
	assert.ErrorIs(t, err, expr.ErrDomain)

	_, _, err = execute(t, "solve", "root", "--expr", "y", "--lower", "-1", "--upper", "2")
	assert.ErrorIs(t, err, expr.ErrUnknownVariable)

	_, _, err = execute(t, "solve", "root", "--expr", "x", "--lower", "-1", "--upper", "2", "--method", "brent")
	assert.ErrorIs(t, err, bounded.ErrUnknownMethod)
}

func TestBench_Builtin(t *testing.T) {
	out, errOut, err := execute(t, "bench", "--solver", "aitken", "--solver", "iq", "--verbose")
	require.NoError(t, err)
	for _, want := range []string{"Results", "Summary", "aitken", "iq-interpolation", "cubic", "cos", "Passed cases"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, errOut, "2 solvers")
}

func TestBench_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
problems:
  - name: half
    kind: bounded
    expr: ["2*x - 1"]
    cases:
      - lower: 0
        upper: 1
        want: [0.5]
`), 0o600))

	out, _, err := execute(t, "bench", "-p", path, "-s", "false-position")
	require.NoError(t, err)
	assert.Contains(t, out, "half")
	assert.Contains(t, out, "false-position")

	_, _, err = execute(t, "bench", "-s", "newton")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flexsolve v"+Version)
}
