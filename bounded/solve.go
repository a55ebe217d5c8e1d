// SPDX-License-Identifier: MIT

package bounded

import (
	"fmt"
	"math"
	"strings"
)

// Method selects a bracketed solver.
type Method int

const (
	// MethodFalsePosition selects FalsePosition.
	MethodFalsePosition Method = iota

	// MethodIQ selects IQInterpolation.
	MethodIQ

	// MethodWegstein selects BoundedWegstein.
	MethodWegstein

	// MethodAitken selects BoundedAitken.
	MethodAitken
)

var methodNames = [...]string{
	MethodFalsePosition: "false-position",
	MethodIQ:            "iq-interpolation",
	MethodWegstein:      "bounded-wegstein",
	MethodAitken:        "bounded-aitken",
}

// aliases are accepted by ParseMethod in addition to the canonical names.
var aliases = map[string]Method{
	"iq":           MethodIQ,
	"regula-falsi": MethodFalsePosition,
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Methods lists every supported Method in declaration order.
func Methods() []Method {
	return []Method{MethodFalsePosition, MethodIQ, MethodWegstein, MethodAitken}
}

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range methodNames {
		if s == n {
			return Method(i), nil
		}
	}
	if m, ok := aliases[n]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Solve routes to the solver selected by m.
func Solve(m Method, f Func, br Bracket, x, yval, xtol, ytol float64, opts *Options) (float64, error) {
	switch m {
	case MethodFalsePosition:
		return FalsePosition(f, br, x, yval, xtol, ytol, opts)
	case MethodIQ:
		return IQInterpolation(f, br, x, yval, xtol, ytol, opts)
	case MethodWegstein:
		return BoundedWegstein(f, br, x, yval, xtol, ytol, opts)
	case MethodAitken:
		return BoundedAitken(f, br, x, yval, xtol, ytol, opts)
	default:
		return math.NaN(), fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}
