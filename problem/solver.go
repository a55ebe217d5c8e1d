// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flexsolve/bounded"
	"github.com/katalvlaran/flexsolve/iterative"
)

// Tolerance groups the solver tolerances of a run and the distance within
// which a solution counts as correct.
type Tolerance struct {
	X       float64 // xtol passed to every solver
	Y       float64 // ytol passed to bounded solvers
	Accept  float64 // max |x - want| per component; 0 means DefaultAccept
	MaxIter int     // iterative cap; 0 means iterative.DefaultMaxIter
}

// DefaultAccept is the acceptance distance used when Tolerance.Accept is 0.
const DefaultAccept = 1e-6

// DefaultTolerance returns xtol = ytol = 1e-10 and the default acceptance.
func DefaultTolerance() Tolerance {
	return Tolerance{X: 1e-10, Y: 1e-10, Accept: DefaultAccept}
}

func (t Tolerance) accept() float64 {
	if t.Accept > 0 {
		return t.Accept
	}

	return DefaultAccept
}

func (t Tolerance) iterativeOptions() *iterative.Options {
	opts := iterative.DefaultOptions()
	if t.MaxIter > 0 {
		opts.MaxIter = t.MaxIter
	}

	return &opts
}

// Solver is one method of either family under its display name.
type Solver struct {
	Name string
	Kind Kind

	fixed iterative.Method
	root  bounded.Method
}

// FixedPointSolver wraps an iterative method.
func FixedPointSolver(m iterative.Method) Solver {
	return Solver{Name: m.String(), Kind: KindFixedPoint, fixed: m}
}

// BoundedSolver wraps a bounded method.
func BoundedSolver(m bounded.Method) Solver {
	return Solver{Name: m.String(), Kind: KindBounded, root: m}
}

// Solvers returns every solver, iterative first.
func Solvers() []Solver {
	var out []Solver
	for _, m := range iterative.Methods() {
		out = append(out, FixedPointSolver(m))
	}
	for _, m := range bounded.Methods() {
		out = append(out, BoundedSolver(m))
	}

	return out
}

// ParseSolver resolves a method name of either family.
func ParseSolver(name string) (Solver, error) {
	if m, err := iterative.ParseMethod(name); err == nil {
		return FixedPointSolver(m), nil
	}
	if m, err := bounded.ParseMethod(name); err == nil {
		return BoundedSolver(m), nil
	}

	return Solver{}, fmt.Errorf("%w: %q", ErrUnknownSolver, strings.TrimSpace(name))
}

// solveFixed runs the wrapped iterative method.
func (s Solver) solveFixed(f iterative.Func, x0 []float64, tol Tolerance) ([]float64, error) {
	return iterative.Solve(s.fixed, f, x0, tol.X, tol.iterativeOptions())
}

// solveRoot runs the wrapped bounded method.
func (s Solver) solveRoot(f bounded.Func, br bounded.Bracket, x, yval float64, tol Tolerance) (float64, error) {
	return bounded.Solve(s.root, f, br, x, yval, tol.X, tol.Y, nil)
}
