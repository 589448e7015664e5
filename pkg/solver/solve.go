package solver

import (
	"github.com/matzehuels/spanlayout/pkg/algebra"
	"github.com/matzehuels/spanlayout/pkg/expr"
)

// SolveEquation classifies the variables of a single constraint.
//
// A constraint without variables is consistent when it evaluates to zero
// and an [Anonymous] inconsistency otherwise. A variable that cannot be
// isolated is underdetermined. The isolation of every other variable is
// evaluated with the underdetermined ones set to zero; it is assigned when
// that yields a number and underdetermined otherwise.
func SolveEquation(eq expr.Equation) Solution {
	expanded := algebra.ExpandEquation(eq)
	names := algebra.Variables(expanded)
	if len(names) == 0 {
		if v, ok := algebra.Evaluate(expanded.Expr); ok && algebra.IsZero(v) {
			return Solution{}
		}
		return inconsistent(Anonymous)
	}

	sol := Solution{
		Assignments:     make(map[string]float64),
		Underdetermined: make(Set),
	}
	isolated := make(map[string]expr.Expr, len(names))
	for _, name := range names {
		if e, ok := Isolate(eq, name); ok {
			isolated[name] = e
		} else {
			sol.Underdetermined[name] = struct{}{}
		}
	}

	free := make(map[string]float64, len(sol.Underdetermined))
	for name := range sol.Underdetermined {
		free[name] = 0
	}
	for _, name := range names {
		e, ok := isolated[name]
		if !ok {
			continue
		}
		if v, ok := algebra.Evaluate(algebra.Bind(free, e)); ok {
			sol.Assignments[name] = v
		} else {
			sol.Underdetermined[name] = struct{}{}
		}
	}
	return sol
}

// frame is one elimination step. Either name was isolated from first and
// substituted into the rest of system, or no variable of first could be
// isolated and first was solved on its own.
type frame struct {
	system     expr.System
	first      expr.Equation
	name       string
	consistent bool
	standalone *Solution
}

// Solve classifies every variable of system.
//
// Elimination runs on an explicit stack, so deep systems do not grow the
// goroutine stack.
//
// A variable is eliminated through the first constraint it can be isolated
// from. If back-substitution later turns that constraint into a false
// constant, as with x*y = 6 once y = 0 is known, the contradiction is
// reported under [Anonymous] and the eliminated variable is left
// unclassified.
func Solve(system expr.System) Solution {
	var frames []frame
	var result Solution

	for current := system; ; {
		if current.Len() == 0 {
			break
		}
		if current.Len() == 1 {
			result = SolveEquation(current.At(0))
			break
		}
		f, reduced := eliminate(current)
		frames = append(frames, f)
		current = reduced
	}

	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		if f.standalone != nil {
			result = f.standalone.Merge(result)
		} else if !f.consistent {
			result = result.Merge(inconsistent(f.name))
		}
		if result.IsInconsistent() {
			result = blame(result, f.system)
		}
		if f.standalone == nil {
			back := expr.Equation{Expr: algebra.Bind(result.Assignments, f.first.Expr)}
			result = result.Merge(SolveEquation(back))
		}
	}
	return result
}

// eliminate removes one variable of the first constraint of system and
// returns the reduced remainder.
func eliminate(system expr.System) (frame, expr.System) {
	eqs := system.Constraints()
	first, rest := eqs[0], eqs[1:]
	f := frame{system: system, first: first, consistent: true}

	for _, name := range algebra.Variables(algebra.ExpandEquation(first)) {
		isolation, ok := Isolate(first, name)
		if !ok {
			continue
		}
		f.name = name

		reduced := make([]expr.Equation, 0, len(rest))
		for _, eq := range rest {
			r := algebra.ExpandEquation(algebra.SubstituteEquation(name, isolation, eq))
			if len(algebra.Variables(r)) > 0 {
				reduced = append(reduced, r)
				continue
			}
			if v, ok := algebra.Evaluate(r.Expr); !ok || !algebra.IsZero(v) {
				f.consistent = false
			}
		}
		return f, expr.NewSystem(reduced...)
	}

	sol := SolveEquation(first)
	f.standalone = &sol
	return f, expr.NewSystem(rest...)
}

// blame marks every variable of a constraint that shares a variable with
// an inconsistency as inconsistent too.
func blame(sol Solution, system expr.System) Solution {
	bad := NewSet(sol.Inconsistencies.Sorted()...)
	for _, eq := range system.Constraints() {
		names := algebra.Variables(eq)
		touches := false
		for _, n := range names {
			if sol.Inconsistencies.Has(n) {
				touches = true
				break
			}
		}
		if touches {
			for _, n := range names {
				bad[n] = struct{}{}
			}
		}
	}
	return sol.Merge(Solution{Inconsistencies: bad})
}
