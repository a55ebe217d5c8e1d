// Package iterative accelerates vector fixed-point iterations x = f(x).
//
// 🚀 What is in the box?
//
//	Two classic extrapolation schemes, each in a tolerance-driven and a
//	flag-driven ("conditional") flavour:
//	  • Wegstein:  secant-like mixing with a per-component weight w
//	  • Aitken:    Steffensen's Δ² extrapolation over three iterates
//
// ✨ Key features:
//   - masked updates: components whose extrapolation denominator is
//     numerically zero (|d| ≤ 1e-16) keep their previous weight/value
//   - self-healing evaluation: a failing f is retried once from the last
//     known-good iterate before the error is returned
//   - no allocations inside the loop; f may reuse or return its input slice
//   - per-iteration hook (Options.OnIter) for tracing
//
// ⚙️ Usage:
//
//	f := func(x []float64) ([]float64, error) {
//		return []float64{math.Cos(x[0])}, nil
//	}
//	x, err := iterative.Wegstein(f, []float64{0.5}, 1e-8, nil)
//	var ce *iterative.ConvergenceError
//	if errors.As(err, &ce) {
//		// ce.Iterations iterations were not enough
//	}
//
// Conditional variants take a CondFunc returning (g, keepGoing, err) and run
// until keepGoing is false; there is no tolerance and no iteration cap.
//
// Extra arguments to f are bound with a closure.
//
// Complexity: O(n) time and memory per iteration for n components, plus the
// cost of one (Wegstein) or two (Aitken) evaluations of f.
package iterative
