// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxIter is the iteration cap used when no Options are supplied.
const DefaultMaxIter = 50

// tiny is the magnitude below which an extrapolation denominator is treated
// as zero and the corresponding component is left untouched.
const tiny = 1e-16

var (
	// ErrNilFunc is returned when f is nil.
	ErrNilFunc = errors.New("iterative: nil function")

	// ErrEmptyInput is returned when the initial iterate has no components.
	ErrEmptyInput = errors.New("iterative: initial iterate must be non-empty")

	// ErrBadTolerance is returned for a negative or NaN tolerance.
	ErrBadTolerance = errors.New("iterative: tolerance must be finite and non-negative")

	// ErrBadMaxIter is returned for a negative iteration cap.
	ErrBadMaxIter = errors.New("iterative: MaxIter must be >= 0")

	// ErrDimensionMismatch is returned when f changes the iterate length or
	// ElementTol does not match it.
	ErrDimensionMismatch = errors.New("iterative: dimension mismatch")

	// ErrEvaluation wraps an error from f that survived the single retry.
	ErrEvaluation = errors.New("iterative: evaluation failed")

	// ErrNotConverged is matched by every *ConvergenceError.
	ErrNotConverged = errors.New("iterative: failed to converge")

	// ErrUnknownMethod is returned by ParseMethod and Solve for unknown methods.
	ErrUnknownMethod = errors.New("iterative: unknown method")
)

// ConvergenceError reports that MaxIter iterations elapsed without meeting
// the tolerance. errors.Is(err, ErrNotConverged) holds for it.
type ConvergenceError struct {
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("iterative: failed to converge after %d iterations", e.Iterations)
}

// Unwrap lets errors.Is match ErrNotConverged.
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// Func maps an iterate to the next one. The returned slice must have the
// same length as x; it is copied by the driver, so f may reuse a buffer.
type Func func(x []float64) ([]float64, error)

// CondFunc is like Func but also reports whether iteration should continue.
type CondFunc func(x []float64) (g []float64, keepGoing bool, err error)

// cond adapts a plain Func to the conditional calling convention.
func (f Func) cond() CondFunc {
	return func(x []float64) ([]float64, bool, error) {
		g, err := f(x)
		return g, true, err
	}
}

// Step describes one completed evaluation of an iteration. X and G alias
// solver buffers and are only valid for the duration of the hook call.
type Step struct {
	Iter int       // 1-based iteration number
	X    []float64 // point f was evaluated at
	G    []float64 // f(X)
}

// Options configures the iterative solvers.
//
// Fields:
//   - MaxIter:    iteration cap for Wegstein/Aitken. Zero is honoured
//     literally: the solver returns *ConvergenceError without iterating.
//     A literal such as &Options{OnIter: h} therefore caps at zero; start
//     from DefaultOptions() and set the fields you need, or pass nil.
//   - ElementTol: optional per-component tolerance; when non-nil it
//     replaces the scalar xtol and must match the iterate length.
//   - OnIter:     optional hook called after every evaluation of f inside
//     the loop.
//
// Conditional solvers only use OnIter.
type Options struct {
	MaxIter    int
	ElementTol []float64
	OnIter     func(Step)
}

// DefaultOptions returns Options with MaxIter = DefaultMaxIter.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter}
}

// settings is the validated, resolved form of Options for one call.
type settings struct {
	maxIter int
	tol     []float64
	onIter  func(Step)
}

func (s *settings) trace(iter int, x, g []float64) {
	if s.onIter != nil {
		s.onIter(Step{Iter: iter, X: x, G: g})
	}
}

// resolve validates the call inputs and expands the tolerance to n entries.
func resolve(f CondFunc, x0 []float64, xtol float64, opts *Options) (settings, error) {
	if f == nil {
		return settings{}, ErrNilFunc
	}
	n := len(x0)
	if n == 0 {
		return settings{}, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIter < 0 {
		return settings{}, ErrBadMaxIter
	}

	tol := make([]float64, n)
	if o.ElementTol != nil {
		if len(o.ElementTol) != n {
			return settings{}, fmt.Errorf("%w: ElementTol has %d entries, iterate has %d", ErrDimensionMismatch, len(o.ElementTol), n)
		}
		copy(tol, o.ElementTol)
	} else {
		for i := range tol {
			tol[i] = xtol
		}
	}
	for _, t := range tol {
		if math.IsNaN(t) || t < 0 {
			return settings{}, ErrBadTolerance
		}
	}

	return settings{maxIter: o.MaxIter, tol: tol, onIter: o.OnIter}, nil
}
