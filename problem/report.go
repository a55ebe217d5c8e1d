// SPDX-License-Identifier: MIT

package problem

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
)

// Row labels of the result and summary tables.
const (
	rowEvaluations    = "Evaluations"
	rowPassed         = "Passed"
	rowFailed         = "Failed"
	rowPassedCases    = "Passed cases"
	rowFailedCases    = "Failed cases"
	rowFailedProblems = "Failed problems"
)

// notApplicable fills cells where a solver does not apply to a problem.
const notApplicable = "-"

type reportStyles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	cell   lipgloss.Style
	failed lipgloss.Style
	border lipgloss.Style
}

// styles is built on first render.
var styles = sync.OnceValue(func() reportStyles {
	var (
		primary = lipgloss.Color("#7C3AED")
		errored = lipgloss.Color("#EF4444")
		muted   = lipgloss.Color("#6B7280")
	)

	return reportStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(primary).MarginTop(1),
		header: lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1),
		label:  lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		failed: lipgloss.NewStyle().Foreground(errored).Padding(0, 1).Align(lipgloss.Right),
		border: lipgloss.NewStyle().Foreground(muted),
	}
})

// Summary aggregates one solver's profiles.
type Summary struct {
	PassedCases    int
	FailedCases    int
	FailedProblems int
}

// Report holds every profile of one List.Run.
type Report struct {
	RunID     uuid.UUID
	Tolerance Tolerance

	solvers  []Solver
	problems []string
	kinds    map[string]Kind
	profiles map[string]map[string]Profile // problem -> solver -> profile
}

func newReport(runID uuid.UUID, l *List, solvers []Solver, tol Tolerance) *Report {
	r := &Report{
		RunID:     runID,
		Tolerance: tol,
		solvers:   solvers,
		problems:  l.Names(),
		kinds:     make(map[string]Kind, l.Len()),
		profiles:  make(map[string]map[string]Profile, l.Len()),
	}
	for _, p := range l.problems {
		r.kinds[p.Name] = p.Kind
	}

	return r
}

func (r *Report) add(p Profile) {
	m, ok := r.profiles[p.Problem]
	if !ok {
		m = make(map[string]Profile, len(r.solvers))
		r.profiles[p.Problem] = m
	}
	m[p.Solver] = p
}

// Solvers returns the solver names in run order.
func (r *Report) Solvers() []string {
	names := make([]string, len(r.solvers))
	for i, s := range r.solvers {
		names[i] = s.Name
	}

	return names
}

// Problems returns the problem names in natural order.
func (r *Report) Problems() []string { return append([]string(nil), r.problems...) }

// Profile returns the profile of solver on problem, if it was run.
func (r *Report) Profile(problem, solver string) (Profile, bool) {
	p, ok := r.profiles[problem][solver]
	return p, ok
}

// Summary totals the cases and problems of solver.
func (r *Report) Summary(solver string) Summary {
	var s Summary
	for _, name := range r.problems {
		p, ok := r.Profile(name, solver)
		if !ok {
			continue
		}
		s.PassedCases += len(p.Passed)
		s.FailedCases += len(p.Failed)
		if !p.OK() {
			s.FailedProblems++
		}
	}

	return s
}

// Failures returns the profiles with at least one failed case, in problem
// then solver order.
func (r *Report) Failures() []Profile {
	var out []Profile
	for _, name := range r.problems {
		for _, s := range r.solvers {
			if p, ok := r.Profile(name, s.Name); ok && !p.OK() {
				out = append(out, p)
			}
		}
	}

	return out
}

// ResultsTable has three rows per problem (Evaluations, Passed, Failed) and
// one column per solver. Cells of solvers that do not apply read "-".
func (r *Report) ResultsTable() *table.Table {
	var rows [][]string
	for _, name := range r.problems {
		for i, label := range []string{rowEvaluations, rowPassed, rowFailed} {
			row := []string{"", label}
			if i == 0 {
				row[0] = name
			}
			for _, s := range r.solvers {
				p, ok := r.Profile(name, s.Name)
				if !ok {
					row = append(row, notApplicable)
					continue
				}
				switch label {
				case rowEvaluations:
					row = append(row, strconv.Itoa(p.Evaluations))
				case rowPassed:
					row = append(row, strconv.Itoa(len(p.Passed)))
				default:
					row = append(row, strconv.Itoa(len(p.Failed)))
				}
			}
			rows = append(rows, row)
		}
	}

	return r.newTable([]string{"Problem", "Summary"}, rows)
}

// SummaryTable has one row per Summary field and one column per solver.
func (r *Report) SummaryTable() *table.Table {
	sums := make([]Summary, len(r.solvers))
	for i, s := range r.solvers {
		sums[i] = r.Summary(s.Name)
	}

	var rows [][]string
	for _, label := range []string{rowPassedCases, rowFailedCases, rowFailedProblems} {
		row := []string{label}
		for _, s := range sums {
			v := s.PassedCases
			switch label {
			case rowFailedCases:
				v = s.FailedCases
			case rowFailedProblems:
				v = s.FailedProblems
			}
			row = append(row, strconv.Itoa(v))
		}
		rows = append(rows, row)
	}

	return r.newTable([]string{""}, rows)
}

// isFailureLabel reports whether a row counts failures.
func isFailureLabel(label string) bool {
	return label == rowFailed || label == rowFailedCases || label == rowFailedProblems
}

// newTable renders rows under the label headers followed by one header per
// solver. Non-zero failure counts are highlighted.
func (r *Report) newTable(labels []string, rows [][]string) *table.Table {
	st := styles()
	nl := len(labels)
	headers := append(append([]string(nil), labels...), r.Solvers()...)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case col < nl:
				return st.label
			}
			cells := rows[row]
			if isFailureLabel(cells[nl-1]) && cells[col] != "0" && cells[col] != notApplicable {
				return st.failed
			}

			return st.cell
		})
}

// Render returns the result and summary tables under titles.
func (r *Report) Render() string {
	st := styles()

	var b strings.Builder
	b.WriteString(st.title.Render("Results (run " + r.RunID.String() + ")"))
	b.WriteString("\n")
	b.WriteString(r.ResultsTable().Render())
	b.WriteString("\n")
	b.WriteString(st.title.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(r.SummaryTable().Render())
	b.WriteString("\n")

	return b.String()
}
