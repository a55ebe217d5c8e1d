// SPDX-License-Identifier: MIT

package iterative

// Wegstein solves x = f(x) with Wegstein acceleration.
//
// Algorithm:
//  1. g0 = f(x0), x1 = g0, w = 1.
//  2. Repeat up to MaxIter times:
//     g1 = f(x1) (on failure retried once from x0 in the first pass,
//     from the previous g1 afterwards);
//     if |g1-x1| < xtol for every component, return g1;
//     dummy = (x1-x0) - g1 + g0; where |dummy| > 1e-16, w = (x1-x0)/dummy,
//     elsewhere w keeps its last value;
//     x0, g0 = x1, g1; x1 = w*g1 + (1-w)*x1.
//  3. Return *ConvergenceError.
//
// Errors: ErrNilFunc, ErrEmptyInput, ErrBadTolerance, ErrBadMaxIter,
// ErrDimensionMismatch, ErrEvaluation, *ConvergenceError.
//
// Complexity: O(n) per iteration, one evaluation of f per iteration.
func Wegstein(f Func, x0 []float64, xtol float64, opts *Options) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	cf := f.cond()
	s, err := resolve(cf, x0, xtol, opts)
	if err != nil {
		return nil, err
	}

	st := newWegsteinState(x0)
	if r := seed(cf, st.x0, st.g0); !r.ok() {
		return nil, r.err
	}
	copy(st.x1, st.g0)
	copy(st.g1, st.g0)

	for it := 1; it <= s.maxIter; it++ {
		if r := guarded(cf, st.x1, st.lastGood(it), st.g1, it); !r.ok() {
			return nil, r.err
		}
		s.trace(it, st.x1, st.g1)

		if withinTol(st.g1, st.x1, s.tol) {
			return clone(st.g1), nil
		}
		st.extrapolate()
	}

	return nil, &ConvergenceError{Iterations: s.maxIter}
}

// ConditionalWegstein runs Wegstein iteration until f reports
// keepGoing == false. There is no tolerance and no iteration cap; the caller
// is responsible for f eventually stopping.
//
// The returned slice is the accelerated iterate computed in the pass where f
// stopped. If the seed evaluation f(x0) already stops, f(x0) is returned.
//
// Errors: ErrNilFunc, ErrEmptyInput, ErrDimensionMismatch, ErrEvaluation.
func ConditionalWegstein(f CondFunc, x0 []float64, opts *Options) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if len(x0) == 0 {
		return nil, ErrEmptyInput
	}
	var s settings
	if opts != nil {
		s.onIter = opts.OnIter
	}

	st := newWegsteinState(x0)
	r := seed(f, st.x0, st.g0)
	if !r.ok() {
		return nil, r.err
	}
	copy(st.x1, st.g0)
	copy(st.g1, st.g0)

	for it := 1; r.keepGoing; it++ {
		if r = guarded(f, st.x1, st.lastGood(it), st.g1, it); !r.ok() {
			return nil, r.err
		}
		s.trace(it, st.x1, st.g1)
		st.extrapolate()
	}

	return clone(st.x1), nil
}
