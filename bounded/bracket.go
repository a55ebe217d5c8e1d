// SPDX-License-Identifier: MIT

package bounded

import (
	"errors"
	"fmt"
	"math"
)

// side classifies f(x) against the band [yval-ytol, yval+ytol].
type side int

const (
	within side = iota
	above
	below
)

// state is the bracket being tightened by one solver call.
//
// Invariant: y0 < yval-ytol <= yval+ytol < y1 for every point that entered
// through probe, so the root stays between x0 and x1.
type state struct {
	f      Func
	x0, y0 float64
	x1, y1 float64
	yval   float64
	lb, ub float64

	evals   int
	maxIter int
	onStep  func(Step)
}

// newState validates the inputs and normalises the bracket so that
// y0 <= yval <= y1. An end sitting exactly on yval counts as either side.
func newState(f Func, br Bracket, yval, xtol, ytol float64, opts *Options) (*state, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if math.IsNaN(xtol) || xtol < 0 || math.IsNaN(ytol) || ytol < 0 {
		return nil, ErrBadTolerance
	}
	for _, v := range [...]float64{br.X0, br.Y0, br.X1, br.Y1, yval} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}
	if !br.Brackets(yval) {
		return nil, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g, yval=%g", ErrNotBracketed, br.X0, br.Y0, br.X1, br.Y1, yval)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIter < 0 {
		return nil, ErrBadMaxIter
	}

	s := &state{
		f:       f,
		x0:      br.X0,
		y0:      br.Y0,
		x1:      br.X1,
		y1:      br.Y1,
		yval:    yval,
		lb:      yval - ytol,
		ub:      yval + ytol,
		maxIter: o.MaxIter,
		onStep:  o.OnStep,
	}
	if s.y0 > s.y1 {
		s.x0, s.y0, s.x1, s.y1 = s.x1, s.y1, s.x0, s.y0
	}

	return s, nil
}

func (s *state) bracket() Bracket {
	return Bracket{X0: s.x0, Y0: s.y0, X1: s.x1, Y1: s.y1}
}

// span returns the signed bracket width x1 - x0.
func (s *state) span() float64 { return s.x1 - s.x0 }

func (s *state) contains(x float64) bool {
	return (s.x0 < x && x < s.x1) || (s.x1 < x && x < s.x0)
}

func (s *state) midpoint() float64 { return (s.x0 + s.x1) / 2 }

// falsePosition returns the secant root through both bracket ends, or the
// midpoint when the two residuals coincide.
func (s *state) falsePosition() float64 {
	dy := s.y1 - s.y0
	if dy == 0 {
		return s.midpoint()
	}

	return s.x0 + (s.yval-s.y0)*s.span()/dy
}

// overshoot nudges x towards the bracket midpoint by 0.1*(ratio)³ of the
// distance to the opposite side, where ratio is the latest width shrink.
func (s *state) overshoot(x, ratio float64) float64 {
	return x + 0.1*(s.x1+s.x0-2*x)*ratio*ratio*ratio
}

// probe evaluates f at x and moves the matching bracket end to x.
func (s *state) probe(x float64) (float64, side, error) {
	if s.maxIter > 0 && s.evals >= s.maxIter {
		return 0, within, &ConvergenceError{Iterations: s.evals}
	}
	y, err := s.f(x)
	s.evals++
	if err != nil {
		return 0, within, fmt.Errorf("%w at x=%g: %w", ErrEvaluation, x, err)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, within, fmt.Errorf("%w: f(%g)=%g", ErrNaNInf, x, y)
	}

	sd := within
	switch {
	case y > s.ub:
		s.x1, s.y1 = x, y
		sd = above
	case y < s.lb:
		s.x0, s.y0 = x, y
		sd = below
	}
	if s.onStep != nil {
		s.onStep(Step{Iter: s.evals, X: x, Y: y, Bracket: s.bracket()})
	}

	return y, sd, nil
}

// fail shapes the return value of an aborted solve: the current estimate is
// kept for an exhausted budget, NaN otherwise.
func fail(x float64, err error) (float64, error) {
	var ce *ConvergenceError
	if errors.As(err, &ce) {
		return x, err
	}

	return math.NaN(), err
}
