// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// withinTol reports whether |a[i]-b[i]| < tol[i] for every component.
func withinTol(a, b, tol []float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) < tol[i]) {
			return false
		}
	}

	return true
}

// belowTol reports whether |d[i]| < tol[i] for every component.
func belowTol(d, tol []float64) bool {
	for i := range d {
		if !(math.Abs(d[i]) < tol[i]) {
			return false
		}
	}

	return true
}

// stable returns the mask of components whose denominator is usable.
func stable(mask []bool, den []float64) []bool {
	for i, d := range den {
		mask[i] = math.Abs(d) > tiny
	}

	return mask
}

// clone returns a fresh copy of s.
func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}

// wegsteinState holds the two-point history and the mixing weights.
type wegsteinState struct {
	x0, x1 []float64
	g0, g1 []float64
	w      []float64
	dx     []float64
	dummy  []float64
	mask   []bool
}

func newWegsteinState(x0 []float64) *wegsteinState {
	n := len(x0)
	s := &wegsteinState{
		x0:    clone(x0),
		x1:    make([]float64, n),
		g0:    make([]float64, n),
		g1:    make([]float64, n),
		w:     make([]float64, n),
		dx:    make([]float64, n),
		dummy: make([]float64, n),
		mask:  make([]bool, n),
	}
	for i := range s.w {
		s.w[i] = 1
	}

	return s
}

// lastGood returns the point a failed evaluation in pass it restarts from:
// the caller's x0 in the first pass, where g1 is still f(x0) and equal to
// the failing x1, and the previous g1 afterwards.
func (s *wegsteinState) lastGood(it int) []float64 {
	if it == 1 {
		return s.x0
	}

	return s.g1
}

// extrapolate updates w where the denominator is stable, shifts the history
// and moves x1 to w*g1 + (1-w)*x1.
func (s *wegsteinState) extrapolate() {
	// dx = x1 - x0; dummy = dx - g1 + g0
	floats.SubTo(s.dx, s.x1, s.x0)
	floats.SubTo(s.dummy, s.dx, s.g1)
	floats.Add(s.dummy, s.g0)

	for i, ok := range stable(s.mask, s.dummy) {
		if ok {
			s.w[i] = s.dx[i] / s.dummy[i]
		}
	}

	copy(s.x0, s.x1)
	copy(s.g0, s.g1)

	// x1 += w*(g1 - x1)
	floats.SubTo(s.dx, s.g1, s.x1)
	floats.Mul(s.dx, s.w)
	floats.Add(s.x1, s.dx)
}

// aitkenState holds the current point and its two successors.
type aitkenState struct {
	x, g, gg []float64
	dxg      []float64
	dgg      []float64
	dummy    []float64
	mask     []bool
}

func newAitkenState(x0 []float64) *aitkenState {
	n := len(x0)
	return &aitkenState{
		x:     clone(x0),
		g:     make([]float64, n),
		gg:    clone(x0),
		dxg:   make([]float64, n),
		dgg:   make([]float64, n),
		dummy: make([]float64, n),
		mask:  make([]bool, n),
	}
}

// step applies x -= (x-g)²/((gg-g)+(x-g)) on the stable components only.
// dxg must already hold x-g.
func (s *aitkenState) step() {
	floats.SubTo(s.dgg, s.gg, s.g)
	floats.AddTo(s.dummy, s.dgg, s.dxg)

	for i, ok := range stable(s.mask, s.dummy) {
		if ok {
			s.x[i] -= s.dxg[i] * s.dxg[i] / s.dummy[i]
		}
	}
}
