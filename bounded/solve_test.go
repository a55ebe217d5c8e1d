package bounded_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/flexsolve/bounded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMethod covers canonical names, aliases and rejection.
func TestParseMethod(t *testing.T) {
	for _, m := range bounded.Methods() {
		got, err := bounded.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := bounded.ParseMethod("  IQ ")
	require.NoError(t, err)
	assert.Equal(t, bounded.MethodIQ, got)

	got, err = bounded.ParseMethod("Regula-Falsi")
	require.NoError(t, err)
	assert.Equal(t, bounded.MethodFalsePosition, got)

	_, err = bounded.ParseMethod("newton")
	assert.ErrorIs(t, err, bounded.ErrUnknownMethod)
}

// TestSolve_UnknownMethod verifies Solve rejects out-of-range methods.
func TestSolve_UnknownMethod(t *testing.T) {
	var calls int
	x, err := bounded.Solve(bounded.Method(42), cubic(&calls), bounded.Bracket{X0: 1, Y0: -1, X1: 2, Y1: 6}, 1, 0, 1e-9, 1e-9, nil)
	assert.ErrorIs(t, err, bounded.ErrUnknownMethod)
	assert.True(t, math.IsNaN(x))
	assert.Equal(t, "Method(42)", bounded.Method(42).String())
	assert.Zero(t, calls)
}
