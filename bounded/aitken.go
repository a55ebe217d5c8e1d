// SPDX-License-Identifier: MIT

package bounded

import "math"

// BoundedAitken solves f(x) = yval inside br by applying Aitken's Δ² process
// to the false-position map.
//
// Each pass evaluates f twice: at x, producing the secant root g, and at g,
// producing gg. The accelerated point x - (x-g)²/(gg-2g+x) is kept when it
// lies strictly inside the bracket; otherwise, or when the denominator is at
// or below 1e-16 in magnitude, gg is nudged towards the midpoint by
// 0.1*(x1+x0-2gg)*(shrink)³. Both evaluations stop the solve when they land
// within ytol of yval, returning the point that did.
func BoundedAitken(f Func, br Bracket, x, yval, xtol, ytol float64, opts *Options) (float64, error) {
	s, err := newState(f, br, yval, xtol, ytol, opts)
	if err != nil {
		return math.NaN(), err
	}
	if !s.contains(x) {
		x = s.falsePosition()
	}

	for math.Abs(s.span()) > xtol {
		_, sd, err := s.probe(x)
		if err != nil {
			return fail(x, err)
		}
		if sd == within {
			return x, nil
		}

		dx0 := s.span()
		g := s.falsePosition()
		if math.Abs(dx0) <= xtol {
			return g, nil
		}

		_, sd, err = s.probe(g)
		if err != nil {
			return fail(g, err)
		}
		if sd == within {
			return g, nil
		}

		gg := s.falsePosition()
		shrink := s.span() / dx0
		dxg := x - g
		den := gg + dxg - g
		if math.Abs(den) <= tiny {
			x = s.overshoot(gg, shrink)
			continue
		}

		x -= dxg * dxg / den
		if !s.contains(x) {
			x = s.overshoot(gg, shrink)
		}
	}

	return x, nil
}
