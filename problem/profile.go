// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/flexsolve/bounded"
	"github.com/katalvlaran/flexsolve/expr"
)

// Failure is a case that errored or produced a wrong answer.
type Failure struct {
	Case string
	Err  error
}

// Profile is the outcome of one solver on every case of one problem.
type Profile struct {
	RunID       uuid.UUID
	Problem     string
	Solver      string
	Evaluations int // total calls of f, bracket endpoints included
	Passed      []string
	Failed      []Failure
}

// OK reports whether every case passed.
func (p Profile) OK() bool { return len(p.Failed) == 0 }

// Profile runs s on every case of p under a fresh run ID.
func (p Problem) Profile(s Solver, tol Tolerance) (Profile, error) {
	return p.profile(uuid.New(), s, tol)
}

func (p Problem) profile(runID uuid.UUID, s Solver, tol Tolerance) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	if s.Kind != p.Kind {
		return Profile{}, fmt.Errorf("%w: %s is %s, %s is %s", ErrKindMismatch, s.Name, s.Kind, p.Name, p.Kind)
	}

	prof := Profile{RunID: runID, Problem: p.Name, Solver: s.Name}
	var (
		run func(c Case) error
		err error
	)
	switch p.Kind {
	case KindFixedPoint:
		run, err = p.fixedRunner(s, tol, &prof.Evaluations)
	default:
		run, err = p.boundedRunner(s, tol, &prof.Evaluations)
	}
	if err != nil {
		return Profile{}, err
	}

	for i, c := range p.Cases {
		name := p.caseName(i)
		if err := run(c); err != nil {
			prof.Failed = append(prof.Failed, Failure{Case: name, Err: err})
			continue
		}
		prof.Passed = append(prof.Passed, name)
	}

	return prof, nil
}

// fixedRunner compiles the system once and returns a per-case runner.
func (p Problem) fixedRunner(s Solver, tol Tolerance, evals *int) (func(Case) error, error) {
	sys, err := expr.ParseSystem(p.Expr...)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	f := func(x []float64) ([]float64, error) {
		*evals++
		return sys.Eval(x)
	}

	return func(c Case) error {
		x, err := s.solveFixed(f, c.X0, tol)
		if err != nil {
			return err
		}

		return check(x, c.Want, tol.accept())
	}, nil
}

// boundedRunner compiles the expression once and returns a per-case runner.
func (p Problem) boundedRunner(s Solver, tol Tolerance, evals *int) (func(Case) error, error) {
	e, err := expr.Parse(p.Expr[0])
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	f := func(x float64) (float64, error) {
		*evals++
		return e.Eval(x)
	}

	return func(c Case) error {
		br, err := bounded.NewBracket(f, c.Lower, c.Upper)
		if err != nil {
			return err
		}
		guess := c.Lower
		if c.Guess != nil {
			guess = *c.Guess
		}
		x, err := s.solveRoot(f, br, guess, c.YVal, tol)
		if err != nil {
			return err
		}

		return check([]float64{x}, c.Want, tol.accept())
	}, nil
}

// check compares got against want component-wise; an empty want accepts any
// solution.
func check(got, want []float64, accept float64) error {
	for i := range want {
		if !(math.Abs(got[i]-want[i]) <= accept) {
			return fmt.Errorf("%w: got %v, want %v", ErrWrongAnswer, got, want)
		}
	}

	return nil
}
