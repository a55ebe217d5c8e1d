// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/katalvlaran/flexsolve/bounded"
)

var (
	// ErrEmpty is returned for a blank expression.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrParse wraps a syntax error reported by the parser.
	ErrParse = errors.New("expr: parse error")

	// ErrUnknownVariable is returned when an expression uses a name that is
	// neither a variable nor a constant.
	ErrUnknownVariable = errors.New("expr: unknown variable")

	// ErrArity is returned when a function is called with the wrong number
	// of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")

	// ErrDomain is returned for an argument outside a function's domain.
	ErrDomain = errors.New("expr: argument out of domain")

	// ErrNotNumber is returned when an expression or argument is not numeric.
	ErrNotNumber = errors.New("expr: not a number")

	// ErrDimensionMismatch is returned when a System is evaluated at a point
	// of the wrong length.
	ErrDimensionMismatch = errors.New("expr: dimension mismatch")
)

// constants are bound in every evaluation.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// unary adapts fn to a one-argument govaluate function.
func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes 1, got %d", ErrArity, name, len(args))
		}
		v, err := number(name, args[0])
		if err != nil {
			return nil, err
		}

		return fn(v), nil
	}
}

// binary adapts fn to a two-argument govaluate function.
func binary(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %s takes 2, got %d", ErrArity, name, len(args))
		}
		a, err := number(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := number(name, args[1])
		if err != nil {
			return nil, err
		}

		return fn(a, b), nil
	}
}

// guarded rejects arguments that fail ok before calling fn.
func guarded(name string, ok func(float64) bool, fn func(float64) float64) govaluate.ExpressionFunction {
	inner := unary(name, fn)
	return func(args ...interface{}) (interface{}, error) {
		if len(args) == 1 {
			if v, err := number(name, args[0]); err == nil && !ok(v) {
				return nil, fmt.Errorf("%w: %s(%g)", ErrDomain, name, v)
			}
		}

		return inner(args...)
	}
}

func nonNegative(v float64) bool { return v >= 0 }
func positive(v float64) bool    { return v > 0 }
func unit(v float64) bool        { return v >= -1 && v <= 1 }

var functions = map[string]govaluate.ExpressionFunction{
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  guarded("asin", unit, math.Asin),
	"acos":  guarded("acos", unit, math.Acos),
	"atan":  unary("atan", math.Atan),
	"sinh":  unary("sinh", math.Sinh),
	"cosh":  unary("cosh", math.Cosh),
	"tanh":  unary("tanh", math.Tanh),
	"exp":   unary("exp", math.Exp),
	"log":   guarded("log", positive, math.Log),
	"log10": guarded("log10", positive, math.Log10),
	"sqrt":  guarded("sqrt", nonNegative, math.Sqrt),
	"abs":   unary("abs", math.Abs),
	"floor": unary("floor", math.Floor),
	"ceil":  unary("ceil", math.Ceil),
	"pow":   binary("pow", math.Pow),
	"min":   binary("min", math.Min),
	"max":   binary("max", math.Max),
	"hypot": binary("hypot", math.Hypot),
}

// number converts a govaluate value to float64.
func number(what string, v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	default:
		return math.NaN(), fmt.Errorf("%w: %s gave %T", ErrNotNumber, what, v)
	}
}

// compile parses src and checks that every variable it uses is in vars or
// constants.
func compile(src string, vars map[string]bool) (*govaluate.EvaluableExpression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, functions)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, src, err)
	}
	for _, name := range parsed.Vars() {
		if _, ok := constants[name]; ok || vars[name] {
			continue
		}

		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownVariable, name, src)
	}

	return parsed, nil
}

// params returns a fresh parameter map holding the constants.
func params(n int) map[string]interface{} {
	p := make(map[string]interface{}, n+len(constants))
	for k, v := range constants {
		p[k] = v
	}

	return p
}

// evaluate runs parsed against p and converts the result.
func evaluate(parsed *govaluate.EvaluableExpression, src string, p map[string]interface{}) (float64, error) {
	v, err := parsed.Evaluate(p)
	if err != nil {
		return math.NaN(), fmt.Errorf("expr: evaluating %q: %w", src, err)
	}

	return number(src, v)
}

// Expr is a parsed scalar expression in x. It is safe for concurrent use.
type Expr struct {
	src    string
	parsed *govaluate.EvaluableExpression
}

// Parse compiles a scalar expression in the variable x.
func Parse(src string) (*Expr, error) {
	parsed, err := compile(src, map[string]bool{"x": true})
	if err != nil {
		return nil, err
	}

	return &Expr{src: src, parsed: parsed}, nil
}

// String returns the source text.
func (e *Expr) String() string { return e.src }

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	p := params(1)
	p["x"] = x

	return evaluate(e.parsed, e.src, p)
}

// Func returns Eval as a bounded.Func.
func (e *Expr) Func() bounded.Func { return e.Eval }
