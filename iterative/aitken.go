// SPDX-License-Identifier: MIT

package iterative

import "gonum.org/v1/gonum/floats"

// Aitken solves x = f(x) with Aitken's Δ² (Steffensen) acceleration.
//
// Algorithm, per iteration:
//  1. g = f(x); on failure x is reset to the last gg checkpoint (initially
//     the caller's x0) and f is retried once.
//  2. If |x-g| < xtol everywhere, return g.
//  3. gg = f(g). If |gg-g| < xtol everywhere, return gg.
//  4. dummy = (gg-g) + (x-g); where |dummy| > 1e-16,
//     x -= (x-g)²/dummy; other components of x are left as they are.
//
// Errors: ErrNilFunc, ErrEmptyInput, ErrBadTolerance, ErrBadMaxIter,
// ErrDimensionMismatch, ErrEvaluation, *ConvergenceError.
//
// Complexity: O(n) per iteration, two evaluations of f per iteration.
func Aitken(f Func, x0 []float64, xtol float64, opts *Options) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	cf := f.cond()
	s, err := resolve(cf, x0, xtol, opts)
	if err != nil {
		return nil, err
	}

	st := newAitkenState(x0)
	for it := 1; it <= s.maxIter; it++ {
		if r := guarded(cf, st.x, st.gg, st.g, it); !r.ok() {
			return nil, r.err
		}
		s.trace(it, st.x, st.g)

		floats.SubTo(st.dxg, st.x, st.g)
		if belowTol(st.dxg, s.tol) {
			return clone(st.g), nil
		}

		if r := unguarded(cf, st.g, st.gg, it); !r.ok() {
			return nil, r.err
		}
		if withinTol(st.gg, st.g, s.tol) {
			return clone(st.gg), nil
		}
		st.step()
	}

	return nil, &ConvergenceError{Iterations: s.maxIter}
}

// ConditionalAitken runs Aitken iteration until f reports keepGoing == false.
// It returns f's output from the evaluation that stopped the loop: g when
// f(x) stops, gg when f(g) stops.
//
// Errors: ErrNilFunc, ErrEmptyInput, ErrDimensionMismatch, ErrEvaluation.
func ConditionalAitken(f CondFunc, x0 []float64, opts *Options) ([]float64, error) {
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

	st := newAitkenState(x0)
	for it := 1; ; it++ {
		r := guarded(f, st.x, st.gg, st.g, it)
		if !r.ok() {
			return nil, r.err
		}
		s.trace(it, st.x, st.g)
		if !r.keepGoing {
			return clone(st.g), nil
		}

		if r = unguarded(f, st.g, st.gg, it); !r.ok() {
			return nil, r.err
		}
		if !r.keepGoing {
			return clone(st.gg), nil
		}

		floats.SubTo(st.dxg, st.x, st.g)
		st.step()
	}
}
