package expr_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/flexsolve/bounded"
	"github.com/katalvlaran/flexsolve/expr"
	"github.com/katalvlaran/flexsolve/iterative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Eval covers operators, functions and constants.
func TestParse_Eval(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"x**3 - 2", 2, 6},
		{"-x + 1", 3, -2},
		{"cos(x) - x", 0, 1},
		{"pow(x, 2) + sqrt(x)", 4, 18},
		{"exp(log(x))", 5, 5},
		{"max(x, 2) * min(x, 2)", 3, 6},
		{"hypot(x, 4)", 3, 5},
		{"sin(pi / 2) + e", 0, 1 + math.E},
		{"abs(x) + floor(1.5) + ceil(1.5)", -2, 5},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			e, err := expr.Parse(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.src, e.String())

			got, err := e.Eval(tc.x)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestParse_Errors covers the parse-time sentinels.
func TestParse_Errors(t *testing.T) {
	_, err := expr.Parse("   ")
	assert.ErrorIs(t, err, expr.ErrEmpty)

	_, err = expr.Parse("x +* 2")
	assert.ErrorIs(t, err, expr.ErrParse)

	_, err = expr.Parse("x + y")
	assert.ErrorIs(t, err, expr.ErrUnknownVariable)

	_, err = expr.Parse("x0 + 1")
	assert.ErrorIs(t, err, expr.ErrUnknownVariable, "scalar expressions only know x")
}

// TestEval_Errors covers evaluation-time sentinels.
func TestEval_Errors(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want error
	}{
		{"sqrt(x)", -1, expr.ErrDomain},
		{"log(x)", 0, expr.ErrDomain},
		{"acos(x)", 2, expr.ErrDomain},
		{"sin(x, x)", 1, expr.ErrArity},
		{"pow(x)", 1, expr.ErrArity},
		{"x > 1", 2, expr.ErrNotNumber},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			e, err := expr.Parse(tc.src)
			require.NoError(t, err)

			_, err = e.Eval(tc.x)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestExpr_BoundedSolve plugs a parsed expression into a bracketed solver.
func TestExpr_BoundedSolve(t *testing.T) {
	e, err := expr.Parse("x**3 - 2")
	require.NoError(t, err)

	br, err := bounded.NewBracket(e.Func(), 1, 2)
	require.NoError(t, err)
	x, err := bounded.IQInterpolation(e.Func(), br, 1.5, 0, 1e-10, 1e-12, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Cbrt(2), x, 1e-9)
}

// TestExpr_DomainErrorPropagates verifies a domain error surfaces from the
// solver wrapped in its evaluation sentinel.
func TestExpr_DomainErrorPropagates(t *testing.T) {
	e, err := expr.Parse("sqrt(x - 1) - 0.5")
	require.NoError(t, err)

	br := bounded.Bracket{X0: 0, Y0: -1, X1: 2, Y1: 0.5}
	_, err = bounded.FalsePosition(e.Func(), br, 0.5, 0, 1e-9, 1e-9, nil)
	assert.ErrorIs(t, err, bounded.ErrEvaluation)
	assert.ErrorIs(t, err, expr.ErrDomain)
}

// TestExpr_Concurrent evaluates one Expr from many goroutines.
func TestExpr_Concurrent(t *testing.T) {
	e, err := expr.Parse("x * x")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := e.Eval(v)
				assert.NoError(t, err)
				assert.Equal(t, v*v, got)
			}
		}(float64(i))
	}
	wg.Wait()
}

// TestParseSystem_Eval covers component variables and the x alias.
func TestParseSystem_Eval(t *testing.T) {
	s, err := expr.ParseSystem("0.5*x1 + 1", "0.25*x + 2")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, []string{"0.5*x1 + 1", "0.25*x + 2"}, s.Sources())

	g, err := s.Eval([]float64{4, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, g)

	_, err = s.Eval([]float64{1})
	assert.ErrorIs(t, err, expr.ErrDimensionMismatch)
}

// TestParseSystem_Errors covers system-level parse failures.
func TestParseSystem_Errors(t *testing.T) {
	_, err := expr.ParseSystem()
	assert.ErrorIs(t, err, expr.ErrEmpty)

	_, err = expr.ParseSystem("x0 + x2", "x1")
	assert.ErrorIs(t, err, expr.ErrUnknownVariable)
	assert.Contains(t, err.Error(), "component 0")
}

// TestSystem_IterativeSolve plugs a system into both iterative families.
func TestSystem_IterativeSolve(t *testing.T) {
	s, err := expr.ParseSystem("0.5*x1 + 1", "0.25*x0 + 2")
	require.NoError(t, err)

	v, err := iterative.Aitken(s.Func(), []float64{0, 0}, 1e-12, nil)
	require.NoError(t, err)
	assert.InDelta(t, 16.0/7, v[0], 1e-9)
	assert.InDelta(t, 18.0/7, v[1], 1e-9)

	c, err := expr.ParseSystem("cos(x)")
	require.NoError(t, err)
	v, err = iterative.ConditionalWegstein(c.Conditional(1e-12), []float64{0.5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, v[0], 1e-9)
}
