// Package bounded finds x with f(x) = yval inside a sign-changing bracket.
//
// 🚀 What is in the box?
//
//	Four scalar solvers sharing one bracket-tightening core:
//	  • FalsePosition:    regula falsi with a bisection guard
//	  • IQInterpolation:  inverse quadratic interpolation
//	  • BoundedWegstein:  Wegstein acceleration of the false-position map
//	  • BoundedAitken:    Aitken Δ² acceleration of the false-position map
//
// ✨ Key features:
//   - every evaluated point replaces the bracket end on its side of yval,
//     so the root never leaves [X0, X1]
//   - accelerated points that leave the bracket fall back to a safe point
//   - the initial bracket may be given in either orientation
//   - stop on |f(x) - yval| <= ytol or bracket width <= xtol
//   - no iteration cap unless Options.MaxIter is set
//
// ⚙️ Usage:
//
//	f := func(x float64) (float64, error) { return x*x*x - 2, nil }
//	br, err := bounded.NewBracket(f, 1, 2)
//	if err != nil {
//		return err
//	}
//	x, err := bounded.IQInterpolation(f, br, 1.5, 0, 1e-10, 1e-12, nil)
//
// Errors from f are returned immediately, wrapped in ErrEvaluation.
package bounded
