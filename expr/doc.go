// Package expr builds solver functions from text such as "x**3 - 2".
//
// Expressions are parsed with govaluate. Besides the arithmetic operators
// (** is exponentiation) the following functions are available:
//
//	sin cos tan asin acos atan sinh cosh tanh
//	exp log log10 sqrt abs floor ceil
//	pow(x, y) min(a, b) max(a, b) hypot(a, b)
//
// and the constants pi and e. Out-of-domain arguments (sqrt of a negative
// number, log of a non-positive one) fail with ErrDomain instead of yielding
// NaN, so the solvers see an evaluation error.
//
// A scalar Expr uses the variable x and plugs into the bounded solvers via
// Expr.Func. A System of n expressions uses x0 … x{n-1} (x is an alias for
// x0) and plugs into the iterative solvers via System.Func or
// System.Conditional.
package expr
