// SPDX-License-Identifier: MIT

// Command flexsolve solves fixed-point and bracketed equations given as text
// and benchmarks the solvers on problem sets.
package main

import (
	"os"

	"github.com/katalvlaran/flexsolve/cmd/flexsolve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
