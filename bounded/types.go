// SPDX-License-Identifier: MIT

package bounded

import (
	"errors"
	"fmt"
	"math"
)

// tiny is the magnitude at or below which an acceleration denominator is
// treated as zero.
const tiny = 1e-16

var (
	// ErrNilFunc is returned when f is nil.
	ErrNilFunc = errors.New("bounded: nil function")

	// ErrBadTolerance is returned for a negative or NaN xtol/ytol.
	ErrBadTolerance = errors.New("bounded: tolerance must be finite and non-negative")

	// ErrNaNInf is returned when a bracket value, yval or f(x) is NaN or ±Inf.
	ErrNaNInf = errors.New("bounded: NaN or Inf encountered")

	// ErrNotBracketed is returned when Y0 and Y1 lie strictly on the same
	// side of yval.
	ErrNotBracketed = errors.New("bounded: residuals do not bracket yval")

	// ErrBadMaxIter is returned for a negative iteration cap.
	ErrBadMaxIter = errors.New("bounded: MaxIter must be >= 0")

	// ErrEvaluation wraps an error returned by f.
	ErrEvaluation = errors.New("bounded: evaluation failed")

	// ErrNotConverged is matched by every *ConvergenceError.
	ErrNotConverged = errors.New("bounded: failed to converge")

	// ErrUnknownMethod is returned by ParseMethod and Solve for unknown methods.
	ErrUnknownMethod = errors.New("bounded: unknown method")
)

// ConvergenceError reports that the opt-in Options.MaxIter evaluation budget
// ran out. errors.Is(err, ErrNotConverged) holds for it.
type ConvergenceError struct {
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("bounded: failed to converge after %d iterations", e.Iterations)
}

// Unwrap lets errors.Is match ErrNotConverged.
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// Func evaluates the scalar function whose level set f(x) = yval is sought.
type Func func(x float64) (float64, error)

// Bracket is a pair of points with their raw function values. The solvers
// require Y0 and Y1 to lie on opposite sides of yval (or on it).
type Bracket struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns |X1 - X0|.
func (b Bracket) Width() float64 { return math.Abs(b.X1 - b.X0) }

// Contains reports whether x lies strictly between X0 and X1.
func (b Bracket) Contains(x float64) bool {
	return (b.X0 < x && x < b.X1) || (b.X1 < x && x < b.X0)
}

// Brackets reports whether yval lies between Y0 and Y1 (inclusive).
func (b Bracket) Brackets(yval float64) bool {
	return !(b.Y0 > yval && b.Y1 > yval) && !(b.Y0 < yval && b.Y1 < yval)
}

// NewBracket evaluates f at both endpoints.
func NewBracket(f Func, x0, x1 float64) (Bracket, error) {
	if f == nil {
		return Bracket{}, ErrNilFunc
	}
	y0, err := f(x0)
	if err != nil {
		return Bracket{}, fmt.Errorf("%w at x=%g: %w", ErrEvaluation, x0, err)
	}
	y1, err := f(x1)
	if err != nil {
		return Bracket{}, fmt.Errorf("%w at x=%g: %w", ErrEvaluation, x1, err)
	}

	return Bracket{X0: x0, Y0: y0, X1: x1, Y1: y1}, nil
}

// Step describes one evaluation of f and the bracket after it was applied.
// Bracket is normalised: Y1 is on the upper side of yval.
type Step struct {
	Iter    int // 1-based evaluation count
	X, Y    float64
	Bracket Bracket
}

// Options configures the bounded solvers.
//
// Fields:
//   - MaxIter: cap on evaluations of f. Zero (the default) means no cap:
//     the solvers then stop only on the bracket width or residual tolerance.
//   - OnStep:  optional hook called after every evaluation of f.
type Options struct {
	MaxIter int
	OnStep  func(Step)
}

// DefaultOptions returns the zero Options: uncapped, no hook.
func DefaultOptions() Options {
	return Options{}
}
