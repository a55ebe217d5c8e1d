// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flexsolve/bounded"
	"github.com/katalvlaran/flexsolve/expr"
	"github.com/katalvlaran/flexsolve/iterative"
	"github.com/spf13/cobra"
)

func newSolveCmd(g *globalOptions) *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single equation",
	}
	solveCmd.AddCommand(newSolveFixedCmd(g), newSolveRootCmd(g))

	return solveCmd
}

type fixedOptions struct {
	exprs       []string
	x0          []float64
	xtol        float64
	maxIter     int
	method      string
	conditional bool
}

func newSolveFixedCmd(g *globalOptions) *cobra.Command {
	o := &fixedOptions{}
	c := &cobra.Command{
		Use:   "fixed",
		Short: "Solve x = f(x) by accelerated fixed-point iteration",
		Long: `Solve the fixed-point system x = f(x).

Pass one --expr per component. Components are named x0, x1, ...; x is an
alias for x0. --x0 defaults to the origin.

With --conditional the iteration stops once no component moves by more
than --xtol, and no iteration cap applies.`,
		Example: `  flexsolve solve fixed --expr "cos(x)" --x0 0.5
  flexsolve solve fixed --expr "0.5*x1 + 1" --expr "0.25*x0 + 2" --method aitken`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolveFixed(cmd, g, o)
		},
	}
	c.Flags().StringArrayVarP(&o.exprs, "expr", "e", nil, "component expression (repeatable)")
	c.Flags().Float64SliceVar(&o.x0, "x0", nil, "initial point, comma separated")
	c.Flags().Float64Var(&o.xtol, "xtol", 1e-10, "per-component convergence tolerance")
	c.Flags().IntVar(&o.maxIter, "maxiter", iterative.DefaultMaxIter, "iteration cap")
	c.Flags().StringVarP(&o.method, "method", "m", iterative.MethodWegstein.String(), methodList(iterative.Methods()))
	c.Flags().BoolVar(&o.conditional, "conditional", false, "stop on movement below --xtol instead of the tolerance test")
	_ = c.MarkFlagRequired("expr")

	return c
}

func runSolveFixed(cmd *cobra.Command, g *globalOptions, o *fixedOptions) error {
	m, err := iterative.ParseMethod(o.method)
	if err != nil {
		return err
	}
	sys, err := expr.ParseSystem(o.exprs...)
	if err != nil {
		return err
	}
	x0 := o.x0
	if len(x0) == 0 {
		x0 = make([]float64, sys.Dim())
	}
	if len(x0) != sys.Dim() {
		return fmt.Errorf("--x0 has %d values for %d expressions", len(x0), sys.Dim())
	}

	lg := g.logger(cmd)
	opts := iterative.DefaultOptions()
	opts.MaxIter = o.maxIter
	opts.OnIter = func(s iterative.Step) {
		lg.Printf("%s iter %d: x=%v f(x)=%v", m, s.Iter, s.X, s.G)
	}

	var x []float64
	if o.conditional {
		x, err = iterative.SolveConditional(m, sys.Conditional(o.xtol), x0, &opts)
	} else {
		x, err = iterative.Solve(m, sys.Func(), x0, o.xtol, &opts)
	}
	if err != nil {
		return err
	}
	formatVector(cmd.OutOrStdout(), "x", x)

	return nil
}

type rootOptions struct {
	expr         string
	lower, upper float64
	guess        float64
	yval         float64
	xtol, ytol   float64
	maxIter      int
	method       string
}

func newSolveRootCmd(g *globalOptions) *cobra.Command {
	o := &rootOptions{}
	c := &cobra.Command{
		Use:   "root",
		Short: "Solve f(x) = yval inside [lower, upper]",
		Long: `Solve the scalar equation f(x) = yval with a bracketed method.

f(lower) and f(upper) must lie on opposite sides of yval. Without --guess
the solver starts from the secant root of the bracket.`,
		Example: `  flexsolve solve root --expr "x**3 - 2" --lower 1 --upper 2
  flexsolve solve root --expr "exp(x)" --yval 5 --lower 0 --upper 3 --method bounded-aitken`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolveRoot(cmd, g, o)
		},
	}
	c.Flags().StringVarP(&o.expr, "expr", "e", "", "function of x")
	c.Flags().Float64Var(&o.lower, "lower", 0, "bracket end")
	c.Flags().Float64Var(&o.upper, "upper", 0, "other bracket end")
	c.Flags().Float64Var(&o.guess, "guess", math.NaN(), "initial guess inside the bracket")
	c.Flags().Float64Var(&o.yval, "yval", 0, "target value of f")
	c.Flags().Float64Var(&o.xtol, "xtol", 1e-10, "bracket width tolerance")
	c.Flags().Float64Var(&o.ytol, "ytol", 1e-10, "residual tolerance |f(x) - yval|")
	c.Flags().IntVar(&o.maxIter, "maxiter", 0, "evaluation cap, 0 for none")
	c.Flags().StringVarP(&o.method, "method", "m", bounded.MethodIQ.String(), methodList(bounded.Methods()))
	_ = c.MarkFlagRequired("expr")
	_ = c.MarkFlagRequired("lower")
	_ = c.MarkFlagRequired("upper")

	return c
}

func runSolveRoot(cmd *cobra.Command, g *globalOptions, o *rootOptions) error {
	m, err := bounded.ParseMethod(o.method)
	if err != nil {
		return err
	}
	e, err := expr.Parse(o.expr)
	if err != nil {
		return err
	}
	f := e.Func()
	br, err := bounded.NewBracket(f, o.lower, o.upper)
	if err != nil {
		return err
	}

	lg := g.logger(cmd)
	opts := bounded.Options{
		MaxIter: o.maxIter,
		OnStep: func(s bounded.Step) {
			lg.Printf("%s eval %d: f(%.15g)=%.15g bracket=[%.15g, %.15g]", m, s.Iter, s.X, s.Y, s.Bracket.X0, s.Bracket.X1)
		},
	}
	x, err := bounded.Solve(m, f, br, o.guess, o.yval, o.xtol, o.ytol, &opts)
	if err != nil {
		return err
	}
	y, err := f(x)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "x = %.15g\n", x)
	fmt.Fprintf(out, "f(x) = %.15g\n", y)

	return nil
}
