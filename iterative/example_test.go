package iterative_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flexsolve/iterative"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleWegstein
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Find the fixed point of cos: x = cos(x), starting at 0.5.
//
// Complexity: one evaluation of cos per iteration.
func ExampleWegstein() {
	f := func(x []float64) ([]float64, error) {
		return []float64{math.Cos(x[0])}, nil
	}

	x, err := iterative.Wegstein(f, []float64{0.5}, 1e-8, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.10f\n", x[0])
	// Output:
	// x=0.7390851332
}

// ExampleOptions attaches a hook while keeping the default iteration cap.
func ExampleOptions() {
	f := func(x []float64) ([]float64, error) {
		return []float64{math.Cos(x[0])}, nil
	}

	opts := iterative.DefaultOptions()
	var passes int
	opts.OnIter = func(iterative.Step) { passes++ }

	x, err := iterative.Wegstein(f, []float64{0.5}, 1e-10, &opts)
	fmt.Printf("x=%.8f hooked=%v err=%v\n", x[0], passes > 0, err)
	// Output:
	// x=0.73908513 hooked=true err=<nil>
}

// ExampleAitken solves a coupled two-component system
//
//	x = 0.5*y + 1
//	y = 0.25*x + 2
//
// whose solution is x = 16/7, y = 18/7.
func ExampleAitken() {
	f := func(v []float64) ([]float64, error) {
		return []float64{0.5*v[1] + 1, 0.25*v[0] + 2}, nil
	}

	v, err := iterative.Aitken(f, []float64{0, 0}, 1e-12, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.6f y=%.6f\n", v[0], v[1])
	// Output:
	// x=2.285714 y=2.571429
}

// ExampleConditionalWegstein lets f decide when to stop.
func ExampleConditionalWegstein() {
	f := func(x []float64) ([]float64, bool, error) {
		g := math.Sqrt(x[0] + 2) // fixed point at 2
		return []float64{g}, math.Abs(g-x[0]) > 1e-12, nil
	}

	x, err := iterative.ConditionalWegstein(f, []float64{0}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.9f\n", x[0])
	// Output:
	// x=2.000000000
}

// ExampleConvergenceError shows how to read the iteration count back.
func ExampleConvergenceError() {
	f := func(x []float64) ([]float64, error) {
		return []float64{x[0] + 1}, nil
	}

	_, err := iterative.Wegstein(f, []float64{0}, 1e-6, &iterative.Options{MaxIter: 3})
	var ce *iterative.ConvergenceError
	if errors.As(err, &ce) {
		fmt.Println(ce.Iterations, errors.Is(err, iterative.ErrNotConverged))
	}
	// Output:
	// 3 true
}
