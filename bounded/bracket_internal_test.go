package bounded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linear(x float64) (float64, error) { return 2*x - 1, nil }

// TestNewState_Normalises verifies y1 always ends up on the upper side.
func TestNewState_Normalises(t *testing.T) {
	s, err := newState(linear, Bracket{X0: 1, Y0: 1, X1: 0, Y1: -1}, 0, 1e-9, 1e-9, nil)
	require.NoError(t, err)
	assert.Equal(t, Bracket{X0: 0, Y0: -1, X1: 1, Y1: 1}, s.bracket())
	assert.Equal(t, 0.5, s.falsePosition())
}

// TestProbe_MovesMatchingEnd checks the three outcomes of one evaluation.
func TestProbe_MovesMatchingEnd(t *testing.T) {
	s, err := newState(linear, Bracket{X0: 0, Y0: -1, X1: 1, Y1: 1}, 0, 1e-9, 0.1, nil)
	require.NoError(t, err)

	_, sd, err := s.probe(0.75)
	require.NoError(t, err)
	assert.Equal(t, above, sd)
	assert.Equal(t, 0.75, s.x1)

	_, sd, err = s.probe(0.25)
	require.NoError(t, err)
	assert.Equal(t, below, sd)
	assert.Equal(t, 0.25, s.x0)

	_, sd, err = s.probe(0.52)
	require.NoError(t, err)
	assert.Equal(t, within, sd)
	assert.Equal(t, Bracket{X0: 0.25, Y0: -0.5, X1: 0.75, Y1: 0.5}, s.bracket())
	assert.Equal(t, 3, s.evals)
}

// TestFalsePosition_FlatResiduals verifies equal residuals bisect instead of
// dividing by zero.
func TestFalsePosition_FlatResiduals(t *testing.T) {
	s, err := newState(linear, Bracket{X0: 0, Y0: 0, X1: 4, Y1: 0}, 0, 1e-9, 1e-9, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.falsePosition())
}

// TestInverseQuadratic_Fallbacks covers the three IQ branches.
func TestInverseQuadratic_Fallbacks(t *testing.T) {
	// Quadratic fit strictly inside the bracket is used as is.
	s := &state{x0: 1, y0: -1, x1: 2, y1: 6}
	x := s.inverseQuadratic(1.5, 1.375, 1)
	assert.True(t, s.contains(x))
	assert.InDelta(t, cbrtTwo, x, 0.05)

	// Repeated residual: secant plus overshoot towards the midpoint.
	s = &state{x0: 0, y0: -1, x1: 1, y1: 1}
	assert.InDelta(t, 0.5, s.inverseQuadratic(3, 1, 0.5), 1e-15)
	s = &state{x0: 0, y0: -1, x1: 1, y1: 3}
	want := 0.25 + 0.1*(1-0.5)*0.125
	assert.InDelta(t, want, s.inverseQuadratic(3, 3, 0.5), 1e-15)

	// Flat bracket: bisection.
	s = &state{x0: 0, y0: 0, x1: 1, y1: 0}
	assert.Equal(t, 0.5, s.inverseQuadratic(2, 0, 1))
}

const cbrtTwo = 1.2599210498948732
