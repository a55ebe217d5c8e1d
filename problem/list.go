// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"

	"github.com/facette/natsort"
	"github.com/google/uuid"
)

// List is an ordered set of uniquely named problems.
type List struct {
	problems []Problem
	index    map[string]int
}

// NewList validates and adds every problem in order.
func NewList(ps ...Problem) (*List, error) {
	l := &List{index: make(map[string]int, len(ps))}
	for _, p := range ps {
		if err := l.Add(p); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Add validates p and appends it.
func (l *List) Add(p Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if _, dup := l.index[p.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateProblem, p.Name)
	}
	l.index[p.Name] = len(l.problems)
	l.problems = append(l.problems, p)

	return nil
}

// Len returns the number of problems.
func (l *List) Len() int { return len(l.problems) }

// Get returns the problem with the given name.
func (l *List) Get(name string) (Problem, bool) {
	i, ok := l.index[name]
	if !ok {
		return Problem{}, false
	}

	return l.problems[i], true
}

// Names returns the problem names in natural order.
func (l *List) Names() []string {
	names := make([]string, len(l.problems))
	for i, p := range l.problems {
		names[i] = p.Name
	}
	natsort.Sort(names)

	return names
}

// OfKind returns the sub-list of problems of kind k.
func (l *List) OfKind(k Kind) *List {
	out := &List{index: make(map[string]int)}
	for _, p := range l.problems {
		if p.Kind == k {
			out.index[p.Name] = len(out.problems)
			out.problems = append(out.problems, p)
		}
	}

	return out
}

// Profiles runs s on every problem of its kind, in natural name order.
func (l *List) Profiles(s Solver, tol Tolerance) ([]Profile, error) {
	return l.profiles(uuid.New(), s, tol)
}

func (l *List) profiles(runID uuid.UUID, s Solver, tol Tolerance) ([]Profile, error) {
	var out []Profile
	for _, name := range l.OfKind(s.Kind).Names() {
		p, _ := l.Get(name)
		prof, err := p.profile(runID, s, tol)
		if err != nil {
			return nil, err
		}
		out = append(out, prof)
	}

	return out, nil
}

// Run profiles every solver and collects the results into a Report.
func (l *List) Run(solvers []Solver, tol Tolerance) (*Report, error) {
	r := newReport(uuid.New(), l, solvers, tol)
	for _, s := range solvers {
		profs, err := l.profiles(r.RunID, s, tol)
		if err != nil {
			return nil, fmt.Errorf("solver %s: %w", s.Name, err)
		}
		for _, p := range profs {
			r.add(p)
		}
	}

	return r, nil
}
