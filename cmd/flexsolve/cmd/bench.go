// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/flexsolve/problem"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	problems string
	solvers  []string
	xtol     float64
	ytol     float64
	accept   float64
	maxIter  int
}

func newBenchCmd(g *globalOptions) *cobra.Command {
	o := &benchOptions{}
	c := &cobra.Command{
		Use:   "bench",
		Short: "Profile solvers on a problem set",
		Long: `Run every selected solver on every problem of its kind and print the
evaluations spent and the cases passed and failed, followed by a summary.

Without --problems the built-in set is used. Problem files are TOML
(.toml) or YAML (.yaml, .yml) with a top-level "problems" list.`,
		Example: `  flexsolve bench
  flexsolve bench --problems problems.toml --solver aitken --solver iq`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, g, o)
		},
	}
	def := problem.DefaultTolerance()
	c.Flags().StringVarP(&o.problems, "problems", "p", "", "problem file (.toml, .yaml, .yml)")
	c.Flags().StringArrayVarP(&o.solvers, "solver", "s", nil, "solver to profile (repeatable, default all)")
	c.Flags().Float64Var(&o.xtol, "xtol", def.X, "x tolerance")
	c.Flags().Float64Var(&o.ytol, "ytol", def.Y, "residual tolerance of bounded solvers")
	c.Flags().Float64Var(&o.accept, "accept", def.Accept, "max distance from the expected solution")
	c.Flags().IntVar(&o.maxIter, "maxiter", 0, "iteration cap of fixed-point solvers, 0 for the default")

	return c
}

func runBench(cmd *cobra.Command, g *globalOptions, o *benchOptions) error {
	var (
		list *problem.List
		err  error
	)
	if o.problems == "" {
		list, err = problem.Builtin()
	} else {
		list, err = problem.LoadFile(o.problems)
	}
	if err != nil {
		return err
	}

	solvers := problem.Solvers()
	if len(o.solvers) > 0 {
		solvers = nil
		for _, name := range o.solvers {
			s, err := problem.ParseSolver(name)
			if err != nil {
				return err
			}
			solvers = append(solvers, s)
		}
	}

	rep, err := list.Run(solvers, problem.Tolerance{X: o.xtol, Y: o.ytol, Accept: o.accept, MaxIter: o.maxIter})
	if err != nil {
		return err
	}

	lg := g.logger(cmd)
	lg.Printf("run %s: %d problems, %d solvers", rep.RunID, list.Len(), len(solvers))
	for _, p := range rep.Failures() {
		for _, f := range p.Failed {
			lg.Printf("%s/%s/%s: %v", p.Problem, p.Solver, f.Case, f.Err)
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), rep.Render())

	return nil
}
