// SPDX-License-Identifier: MIT

package bounded

import "math"

// IQInterpolation solves f(x) = yval inside br by inverse quadratic
// interpolation through the two bracket ends and the most recently displaced
// end.
//
// The quadratic estimate is used only when it lands strictly inside the
// bracket; otherwise the midpoint is taken. When two of the three residuals
// coincide the fit is undefined and the secant root is used, pushed towards
// the midpoint by 0.1*(x1+x0-2x)*(shrink)³ so a one-sided bracket keeps
// closing. Stopping rules match FalsePosition.
func IQInterpolation(f Func, br Bracket, x, yval, xtol, ytol float64, opts *Options) (float64, error) {
	s, err := newState(f, br, yval, xtol, ytol, opts)
	if err != nil {
		return math.NaN(), err
	}
	if !s.contains(x) {
		x = s.falsePosition()
		if !s.contains(x) {
			x = s.midpoint()
		}
	}

	var x2, y2 float64
	dx0 := s.span()
	for math.Abs(s.span()) > xtol {
		// The end about to be replaced becomes the third interpolation node.
		ox0, oy0, ox1, oy1 := s.x0, s.y0, s.x1, s.y1
		_, sd, err := s.probe(x)
		if err != nil {
			return fail(x, err)
		}
		switch sd {
		case within:
			return x, nil
		case above:
			x2, y2 = ox1, oy1
		case below:
			x2, y2 = ox0, oy0
		}

		dx1 := s.span()
		x = s.inverseQuadratic(x2, y2, dx1/dx0)
		dx0 = dx1
	}

	return x, nil
}

// inverseQuadratic returns the next IQ estimate from the bracket and the
// third node (x2, y2). shrink is the ratio of the current to the previous
// bracket span.
func (s *state) inverseQuadratic(x2, y2, shrink float64) float64 {
	f0 := s.yval - s.y0
	f1 := s.yval - s.y1
	f2 := s.yval - y2
	d01, d02, d12 := f0-f1, f0-f2, f1-f2

	if d01 != 0 && d02 != 0 && d12 != 0 {
		x := s.x0*(f1/d02)*(f2/d01) - s.x1*(f0/d12)*(f2/d01) + x2*(f0/d12)*(f1/d02)
		if s.contains(x) {
			return x
		}

		return s.midpoint()
	}

	if s.y1 == s.y0 {
		return s.midpoint()
	}
	x := s.falsePosition()
	if !s.contains(x) {
		return s.midpoint()
	}

	return s.overshoot(x, shrink)
}
