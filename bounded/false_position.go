// SPDX-License-Identifier: MIT

package bounded

import "math"

// FalsePosition solves f(x) = yval inside br by regula falsi with a
// bisection guard.
//
// Each pass evaluates f at the current estimate, replaces the bracket end on
// the same side of yval and takes the secant root of the tightened bracket as
// the next estimate. When that estimate moves less than a tenth of the
// bracket width the midpoint is used instead, which stops one stale end from
// stalling the method.
//
// x is the initial guess; it is replaced by the secant root when it is not
// strictly inside br. The solve stops as soon as |f(x) - yval| <= ytol
// (returning that x) or the bracket width drops to xtol (returning the last
// estimate).
//
// Complexity: one evaluation of f per iteration, O(1) memory.
func FalsePosition(f Func, br Bracket, x, yval, xtol, ytol float64, opts *Options) (float64, error) {
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

		prev := x
		x = s.falsePosition()
		if math.Abs(x-prev) < math.Abs(s.span())/10 {
			x = s.midpoint()
		}
	}

	return x, nil
}
