// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidProblem is returned by Validate for malformed problems.
	ErrInvalidProblem = errors.New("problem: invalid problem")

	// ErrDuplicateProblem is returned when a name is added twice to a List.
	ErrDuplicateProblem = errors.New("problem: duplicate problem name")

	// ErrKindMismatch is returned when a solver is profiled on a problem of
	// the other kind.
	ErrKindMismatch = errors.New("problem: solver does not apply to problem kind")

	// ErrUnknownSolver is returned by ParseSolver.
	ErrUnknownSolver = errors.New("problem: unknown solver")

	// ErrWrongAnswer marks a case whose solution is farther than the
	// acceptance tolerance from the expected one.
	ErrWrongAnswer = errors.New("problem: wrong answer")

	// ErrUnsupportedFormat is returned by LoadFile for unknown extensions.
	ErrUnsupportedFormat = errors.New("problem: unsupported file format")
)

// Kind tells which solver family a problem is for.
type Kind string

const (
	// KindFixedPoint problems solve x = f(x) with the iterative solvers.
	KindFixedPoint Kind = "fixed-point"

	// KindBounded problems solve f(x) = yval inside a bracket with the
	// bounded solvers.
	KindBounded Kind = "bounded"
)

// Case is one starting configuration of a problem.
//
// Fixed-point cases use X0. Bounded cases use Lower, Upper, YVal and the
// optional Guess; a missing guess lets the solver start from the secant root.
// Want, when set, is the expected solution.
type Case struct {
	Name  string    `toml:"name" yaml:"name"`
	X0    []float64 `toml:"x0,omitempty" yaml:"x0,omitempty"`
	Lower float64   `toml:"lower,omitempty" yaml:"lower,omitempty"`
	Upper float64   `toml:"upper,omitempty" yaml:"upper,omitempty"`
	Guess *float64  `toml:"guess,omitempty" yaml:"guess,omitempty"`
	YVal  float64   `toml:"yval,omitempty" yaml:"yval,omitempty"`
	Want  []float64 `toml:"want,omitempty" yaml:"want,omitempty"`
}

// Problem is a named function with its cases. Expr holds one expression per
// component for fixed-point problems and exactly one for bounded problems.
type Problem struct {
	Name  string   `toml:"name" yaml:"name"`
	Kind  Kind     `toml:"kind" yaml:"kind"`
	Expr  []string `toml:"expr" yaml:"expr"`
	Cases []Case   `toml:"cases" yaml:"cases"`
}

// caseName returns the display name of case i.
func (p Problem) caseName(i int) string {
	if n := p.Cases[i].Name; n != "" {
		return n
	}

	return fmt.Sprintf("case %d", i+1)
}

// Validate checks the problem's shape without evaluating anything.
func (p Problem) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidProblem, p.Name, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(p.Name) == "" {
		return invalid("empty name")
	}
	if len(p.Expr) == 0 {
		return invalid("no expressions")
	}
	if len(p.Cases) == 0 {
		return invalid("no cases")
	}

	switch p.Kind {
	case KindFixedPoint:
		for i, c := range p.Cases {
			if len(c.X0) != len(p.Expr) {
				return invalid("%s: x0 has %d values for %d expressions", p.caseName(i), len(c.X0), len(p.Expr))
			}
			if len(c.Want) != 0 && len(c.Want) != len(p.Expr) {
				return invalid("%s: want has %d values for %d expressions", p.caseName(i), len(c.Want), len(p.Expr))
			}
		}
	case KindBounded:
		if len(p.Expr) != 1 {
			return invalid("bounded problems take one expression, got %d", len(p.Expr))
		}
		for i, c := range p.Cases {
			if c.Lower == c.Upper {
				return invalid("%s: empty bracket [%g, %g]", p.caseName(i), c.Lower, c.Upper)
			}
			if len(c.Want) > 1 {
				return invalid("%s: want has %d values for a scalar problem", p.caseName(i), len(c.Want))
			}
		}
	default:
		return invalid("unknown kind %q", p.Kind)
	}

	return nil
}
