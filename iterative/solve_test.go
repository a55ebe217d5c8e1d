package iterative_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/flexsolve/iterative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMethod verifies name round-tripping and the unknown-name error.
func TestParseMethod(t *testing.T) {
	for _, m := range iterative.Methods() {
		got, err := iterative.ParseMethod(" " + m.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := iterative.ParseMethod("AITKEN")
	require.NoError(t, err)
	assert.Equal(t, iterative.MethodAitken, got)

	_, err = iterative.ParseMethod("newton")
	assert.ErrorIs(t, err, iterative.ErrUnknownMethod)
	assert.Equal(t, "Method(7)", iterative.Method(7).String())
}

// TestSolve_Dispatch verifies both routes reach the same fixed point.
func TestSolve_Dispatch(t *testing.T) {
	for _, m := range iterative.Methods() {
		t.Run(m.String(), func(t *testing.T) {
			var calls int
			x, err := iterative.Solve(m, cosMap(&calls), []float64{0.2}, 1e-10, nil)
			require.NoError(t, err)
			assert.InDelta(t, dottie, x[0], 1e-9)

			cf := func(x []float64) ([]float64, bool, error) {
				g := math.Cos(x[0])
				return []float64{g}, math.Abs(g-x[0]) >= 1e-12, nil
			}
			x, err = iterative.SolveConditional(m, cf, []float64{0.2}, nil)
			require.NoError(t, err)
			assert.InDelta(t, dottie, x[0], 1e-9)
		})
	}

	var calls int
	_, err := iterative.Solve(iterative.Method(42), cosMap(&calls), []float64{0.2}, 1e-10, nil)
	assert.ErrorIs(t, err, iterative.ErrUnknownMethod)
	_, err = iterative.SolveConditional(iterative.Method(-1), nil, []float64{0.2}, nil)
	assert.ErrorIs(t, err, iterative.ErrUnknownMethod)
}
