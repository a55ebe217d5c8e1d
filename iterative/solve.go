// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"strings"
)

// Method selects an acceleration scheme.
type Method int

const (
	// MethodWegstein selects Wegstein / ConditionalWegstein.
	MethodWegstein Method = iota

	// MethodAitken selects Aitken / ConditionalAitken.
	MethodAitken
)

var methodNames = [...]string{
	MethodWegstein: "wegstein",
	MethodAitken:   "aitken",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Methods lists every supported Method in declaration order.
func Methods() []Method {
	return []Method{MethodWegstein, MethodAitken}
}

// ParseMethod maps a case-insensitive name ("wegstein", "aitken") to a Method.
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range methodNames {
		if s == n {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Solve routes to Wegstein or Aitken.
func Solve(m Method, f Func, x0 []float64, xtol float64, opts *Options) ([]float64, error) {
	switch m {
	case MethodWegstein:
		return Wegstein(f, x0, xtol, opts)
	case MethodAitken:
		return Aitken(f, x0, xtol, opts)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// SolveConditional routes to ConditionalWegstein or ConditionalAitken.
func SolveConditional(m Method, f CondFunc, x0 []float64, opts *Options) ([]float64, error) {
	switch m {
	case MethodWegstein:
		return ConditionalWegstein(f, x0, opts)
	case MethodAitken:
		return ConditionalAitken(f, x0, opts)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}
