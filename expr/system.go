// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Knetic/govaluate"
	"github.com/katalvlaran/flexsolve/iterative"
)

// System is a fixed-point map x ↦ (f0(x), …, f{n-1}(x)) over the variables
// x0 … x{n-1}. It is safe for concurrent use.
type System struct {
	srcs   []string
	parsed []*govaluate.EvaluableExpression
}

// varName returns the name bound to component i.
func varName(i int) string { return "x" + strconv.Itoa(i) }

// ParseSystem compiles one expression per component. x is accepted as an
// alias for x0.
func ParseSystem(srcs ...string) (*System, error) {
	if len(srcs) == 0 {
		return nil, ErrEmpty
	}
	vars := map[string]bool{"x": true}
	for i := range srcs {
		vars[varName(i)] = true
	}

	s := &System{srcs: srcs, parsed: make([]*govaluate.EvaluableExpression, len(srcs))}
	for i, src := range srcs {
		p, err := compile(src, vars)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		s.parsed[i] = p
	}

	return s, nil
}

// Dim returns the number of components.
func (s *System) Dim() int { return len(s.parsed) }

// Sources returns the expression texts.
func (s *System) Sources() []string { return append([]string(nil), s.srcs...) }

// Eval evaluates every component at x.
func (s *System) Eval(x []float64) ([]float64, error) {
	if len(x) != len(s.parsed) {
		return nil, fmt.Errorf("%w: got %d values for %d components", ErrDimensionMismatch, len(x), len(s.parsed))
	}
	p := params(len(x) + 1)
	for i, v := range x {
		p[varName(i)] = v
	}
	p["x"] = x[0]

	g := make([]float64, len(x))
	for i, parsed := range s.parsed {
		v, err := evaluate(parsed, s.srcs[i], p)
		if err != nil {
			return nil, err
		}
		g[i] = v
	}

	return g, nil
}

// Func returns Eval as an iterative.Func.
func (s *System) Func() iterative.Func { return s.Eval }

// Conditional returns a flag-driven map that keeps going while any component
// moves by more than tol.
func (s *System) Conditional(tol float64) iterative.CondFunc {
	return func(x []float64) ([]float64, bool, error) {
		g, err := s.Eval(x)
		if err != nil {
			return nil, false, err
		}
		for i := range g {
			if !(math.Abs(g[i]-x[i]) <= tol) {
				return g, true, nil
			}
		}

		return g, false, nil
	}
}
