// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
)

// result is the outcome of one evaluation of f: either a value copied into a
// solver-owned buffer together with the continuation flag, or the error f
// reported.
type result struct {
	g         []float64
	keepGoing bool
	err       error
}

func (r result) ok() bool { return r.err == nil }

// call evaluates f at x and copies the output into dst on success.
// dst is left untouched on failure.
func call(f CondFunc, x, dst []float64) result {
	g, keepGoing, err := f(x)
	if err != nil {
		return result{err: err}
	}
	if len(g) != len(dst) {
		return result{err: fmt.Errorf("%w: f returned %d components, want %d", ErrDimensionMismatch, len(g), len(dst))}
	}
	copy(dst, g)

	return result{g: dst, keepGoing: keepGoing}
}

// guarded evaluates f at x. If f fails, x is reset to the last known-good
// point and f is evaluated once more; a second failure is returned wrapped
// in ErrEvaluation. Shape errors are never retried.
func guarded(f CondFunc, x, lastGood, dst []float64, iter int) result {
	r := call(f, x, dst)
	if r.ok() || errors.Is(r.err, ErrDimensionMismatch) {
		return r
	}

	copy(x, lastGood)
	r = call(f, x, dst)
	if !r.ok() && !errors.Is(r.err, ErrDimensionMismatch) {
		r.err = fmt.Errorf("%w at iteration %d after retry: %w", ErrEvaluation, iter, r.err)
	}

	return r
}

// seed performs an unguarded evaluation used to start an iteration.
func seed(f CondFunc, x, dst []float64) result {
	r := call(f, x, dst)
	if !r.ok() && !errors.Is(r.err, ErrDimensionMismatch) {
		r.err = fmt.Errorf("%w at initial iterate: %w", ErrEvaluation, r.err)
	}

	return r
}

// unguarded evaluates f once inside the loop without a retry, as Aitken does
// for its second evaluation.
func unguarded(f CondFunc, x, dst []float64, iter int) result {
	r := call(f, x, dst)
	if !r.ok() && !errors.Is(r.err, ErrDimensionMismatch) {
		r.err = fmt.Errorf("%w at iteration %d: %w", ErrEvaluation, iter, r.err)
	}

	return r
}
