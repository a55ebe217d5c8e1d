// Package flexsolve is a set of minimal-overhead drivers for converging on
// the solution of x = f(x) or f(x) = yval, where f is expensive and supplied
// by the caller.
//
// 🚀 What is flexsolve?
//
//	Two families of solvers that never import each other:
//		• iterative/: Wegstein and Aitken acceleration of vector fixed-point
//		  iteration, plus flag-driven ("conditional") variants
//		• bounded/:   scalar root finding inside a sign-changing bracket:
//		  false position, inverse quadratic interpolation, bounded Wegstein,
//		  bounded Aitken
//
// ✨ Why flexsolve?
//
//   - Numerically guarded – masked updates skip components whose
//     extrapolation denominator vanishes, bracketed methods never leave
//     the bracket
//   - Self-healing – a failing f is retried once from the last good iterate
//   - Observable – per-iteration hooks (OnIter, OnStep) instead of logging
//   - Plain Go – explicit errors, no globals, safe for concurrent callers
//
// Supporting packages:
//
//	expr/:    build f from text ("x**3 - 2", "cos(x)") for quick experiments
//	problem/: benchmark harness: problem sets, solver profiles, report tables
//	cmd/flexsolve: CLI: solve fixed, solve root, bench, version
//
// Quick example:
//
//	f := func(x []float64) ([]float64, error) {
//		return []float64{math.Cos(x[0])}, nil
//	}
//	x, err := iterative.Wegstein(f, []float64{0.5}, 1e-8, nil)
//	// x[0] ≈ 0.7390851332
//
//	go get github.com/katalvlaran/flexsolve
package flexsolve
