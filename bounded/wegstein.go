// SPDX-License-Identifier: MIT

package bounded

import "math"

// BoundedWegstein solves f(x) = yval inside br by applying Wegstein
// acceleration to the false-position map.
//
// The first evaluation at x seeds the bracket and g0, the secant root of the
// tightened bracket. Every later pass evaluates f at the accelerated point,
// takes the new secant root g1 and extrapolates
//
//	w = Δx / (Δx - g1 + g0),  x ← w*g1 + (1-w)*x
//
// If the extrapolation leaves the bracket, or the denominator is at or below
// 1e-16 in magnitude, the plain secant root g1 is used instead. The solve
// stops when |f(x) - yval| <= ytol or the bracket width drops to xtol.
func BoundedWegstein(f Func, br Bracket, x, yval, xtol, ytol float64, opts *Options) (float64, error) {
	s, err := newState(f, br, yval, xtol, ytol, opts)
	if err != nil {
		return math.NaN(), err
	}
	if !s.contains(x) {
		x = s.falsePosition()
	}

	xOld := x
	_, sd, err := s.probe(x)
	if err != nil {
		return fail(x, err)
	}
	if sd == within {
		return x, nil
	}
	g0 := s.falsePosition()
	x = g0

	for math.Abs(s.span()) > xtol {
		_, sd, err = s.probe(x)
		if err != nil {
			return fail(x, err)
		}
		if sd == within {
			break
		}

		g1 := s.falsePosition()
		dx := x - xOld
		den := dx - g1 + g0
		if math.Abs(den) <= tiny {
			x, g0 = g1, g1
			continue
		}

		w := dx / den
		xOld = x
		x = w*g1 + (1-w)*x
		if s.contains(x) {
			g0 = g1
		} else {
			x, g0 = g1, g1
		}
	}

	return x, nil
}
