package expr

import (
	"slices"
	"strings"
)

// Equation asserts that Expr equals zero.
type Equation struct {
	Expr Expr
}

// Eq returns the equation left = right, stored as left - right = 0.
// A right-hand side of literal zero is dropped rather than subtracted.
func Eq(left, right any) Equation {
	l, r := Lift(left), Lift(right)
	if r == (Literal{}) {
		return Equation{Expr: l}
	}
	return Equation{Expr: Subtraction{Left: l, Right: r}}
}

func (e Equation) accept(d dispatcher) { d.equation(e) }

// String renders the equation as "expr = 0".
func (e Equation) String() string {
	return e.Expr.String() + " = 0"
}

// System is an ordered collection of equations. The zero value is an empty
// system. Systems are values: every operation returns a new System.
type System struct {
	constraints []Equation
}

// NewSystem returns a system holding a copy of eqs.
func NewSystem(eqs ...Equation) System {
	return System{constraints: slices.Clone(eqs)}
}

func (s System) accept(d dispatcher) { d.system(s) }

// Constraints returns a copy of the equations in order.
func (s System) Constraints() []Equation {
	return slices.Clone(s.constraints)
}

// Len returns the number of equations.
func (s System) Len() int { return len(s.constraints) }

// At returns the i-th equation.
func (s System) At(i int) Equation { return s.constraints[i] }

// Append returns a system with eqs added at the end.
func (s System) Append(eqs ...Equation) System {
	out := make([]Equation, 0, len(s.constraints)+len(eqs))
	out = append(out, s.constraints...)
	out = append(out, eqs...)
	return System{constraints: out}
}

// Merge returns the concatenation of s and other.
func (s System) Merge(other System) System {
	return s.Append(other.constraints...)
}

// Remove returns s without the equations of other. Removal is by multiset:
// each equation in other deletes at most one structurally equal equation
// from s, the earliest one.
func (s System) Remove(other System) System {
	out := slices.Clone(s.constraints)
	for _, eq := range other.constraints {
		if i := slices.Index(out, eq); i >= 0 {
			out = slices.Delete(out, i, i+1)
		}
	}
	return System{constraints: out}
}

// Equal reports whether both systems hold the same equations in the same order.
func (s System) Equal(other System) bool {
	return slices.Equal(s.constraints, other.constraints)
}

// String renders one equation per line.
func (s System) String() string {
	lines := make([]string, len(s.constraints))
	for i, eq := range s.constraints {
		lines[i] = eq.String()
	}
	return strings.Join(lines, "\n")
}
