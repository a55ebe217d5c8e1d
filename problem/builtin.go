// SPDX-License-Identifier: MIT

package problem

import "math"

// dottie is the fixed point of cos.
const dottie = 0.7390851332151607

func guess(v float64) *float64 { return &v }

// builtin is the canonical problem set; see Builtin.
var builtin = []Problem{
	{
		Name: "cos",
		Kind: KindFixedPoint,
		Expr: []string{"cos(x)"},
		Cases: []Case{
			{Name: "x0=0.5", X0: []float64{0.5}, Want: []float64{dottie}},
			{Name: "x0=1", X0: []float64{1}, Want: []float64{dottie}},
		},
	},
	{
		Name: "sqrt",
		Kind: KindFixedPoint,
		Expr: []string{"sqrt(x + 2)"},
		Cases: []Case{
			{Name: "x0=0", X0: []float64{0}, Want: []float64{2}},
			{Name: "x0=5", X0: []float64{5}, Want: []float64{2}},
		},
	},
	{
		Name: "babylonian",
		Kind: KindFixedPoint,
		Expr: []string{"(x + 2/x) / 2"},
		Cases: []Case{
			{Name: "x0=1", X0: []float64{1}, Want: []float64{math.Sqrt2}},
			{Name: "x0=3", X0: []float64{3}, Want: []float64{math.Sqrt2}},
		},
	},
	{
		Name: "linear-2d",
		Kind: KindFixedPoint,
		Expr: []string{"0.5*x1 + 1", "0.25*x0 + 2"},
		Cases: []Case{
			{Name: "origin", X0: []float64{0, 0}, Want: []float64{16.0 / 7, 18.0 / 7}},
			{Name: "far", X0: []float64{10, -4}, Want: []float64{16.0 / 7, 18.0 / 7}},
		},
	},
	{
		Name: "cubic",
		Kind: KindBounded,
		Expr: []string{"x**3 - 2"},
		Cases: []Case{
			{Name: "[1,2]", Lower: 1, Upper: 2, Want: []float64{math.Cbrt(2)}},
			{Name: "[0,3]", Lower: 0, Upper: 3, Want: []float64{math.Cbrt(2)}},
			{Name: "[1,2] guess", Lower: 1, Upper: 2, Guess: guess(1.5), Want: []float64{math.Cbrt(2)}},
		},
	},
	{
		Name: "exp",
		Kind: KindBounded,
		Expr: []string{"exp(x)"},
		Cases: []Case{
			{Name: "[0,3]", Lower: 0, Upper: 3, YVal: 5, Want: []float64{math.Log(5)}},
			{Name: "[-2,4]", Lower: -2, Upper: 4, YVal: 5, Want: []float64{math.Log(5)}},
		},
	},
	{
		Name: "kepler",
		Kind: KindBounded,
		Expr: []string{"x - 0.5*sin(x)"},
		Cases: []Case{
			{Name: "M=1", Lower: 0, Upper: 3, YVal: 1, Want: []float64{1.4987011335178484}},
		},
	},
	{
		Name: "dottie",
		Kind: KindBounded,
		Expr: []string{"cos(x) - x"},
		Cases: []Case{
			{Name: "[0,1]", Lower: 0, Upper: 1, Want: []float64{dottie}},
			{Name: "[-1,2]", Lower: -1, Upper: 2, Want: []float64{dottie}},
		},
	},
	{
		Name: "tanh",
		Kind: KindBounded,
		Expr: []string{"10*tanh(x - 1)"},
		Cases: []Case{
			{Name: "[-5,10]", Lower: -5, Upper: 10, Want: []float64{1}},
		},
	},
}

// Builtin returns a fresh List of canonical fixed-point and bounded problems.
func Builtin() (*List, error) {
	ps := make([]Problem, len(builtin))
	copy(ps, builtin)

	return NewList(ps...)
}
