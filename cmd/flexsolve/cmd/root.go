// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
}

// logger returns the iteration logger: stderr with --verbose, discarded
// otherwise.
func (g *globalOptions) logger(cmd *cobra.Command) *log.Logger {
	if !g.verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(cmd.ErrOrStderr(), "flexsolve: ", log.Lmsgprefix)
}

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "flexsolve",
		Short: "Accelerated fixed-point and bracketed root solvers",
		Long: `flexsolve drives Wegstein and Aitken acceleration for x = f(x) and
bracketed solvers (false position, inverse quadratic interpolation,
bounded Wegstein, bounded Aitken) for f(x) = yval.

Functions are written as expressions, e.g. "cos(x)" or "x**3 - 2".`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every iteration to stderr")

	root.AddCommand(newSolveCmd(g), newBenchCmd(g), newVersionCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// formatVector prints one "name = value" line per component.
func formatVector(w io.Writer, name string, x []float64) {
	if len(x) == 1 {
		fmt.Fprintf(w, "%s = %.15g\n", name, x[0])
		return
	}
	for i, v := range x {
		fmt.Fprintf(w, "%s%d = %.15g\n", name, i, v)
	}
}

// methodList joins method names for help texts.
func methodList[M fmt.Stringer](ms []M) string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}

	return strings.Join(names, "|")
}
