// Package problem is a small benchmarking harness for the flexsolve solvers.
//
// 🚀 What is in the box?
//
//	• Problem:  a named function (text expressions) plus test cases
//	• Solver:   one iterative or bounded method under a stable name
//	• Profile:  evaluations spent and cases passed/failed for one
//	             problem × solver pair
//	• Report:   every profile of a run, rendered as result and summary tables
//
// ✨ Key features:
//   - fixed-point problems (x = f(x), any dimension) and bounded problems
//     (f(x) = yval inside [lower, upper])
//   - problem sets loaded from TOML or YAML files
//   - natural ordering of problem names ("p2" before "p10")
//   - a built-in set of canonical problems (Builtin)
//
// ⚙️ Usage:
//
//	list, _ := problem.Builtin()
//	rep, err := list.Run(problem.Solvers(), problem.DefaultTolerance())
//	if err != nil {
//		return err
//	}
//	fmt.Println(rep.Render())
package problem
