package algebra

import "github.com/matzehuels/spanlayout/pkg/expr"

// Substitute replaces every occurrence of the variable name in e with
// replacement. A tree that does not mention name comes back unchanged.
func Substitute(name string, replacement, e expr.Expr) expr.Expr {
	return substitute(e, func(n string) (expr.Expr, bool) {
		return replacement, n == name
	})
}

// SubstituteEquation applies [Substitute] to the expression of eq.
func SubstituteEquation(name string, replacement expr.Expr, eq expr.Equation) expr.Equation {
	return expr.Equation{Expr: Substitute(name, replacement, eq.Expr)}
}

// SubstituteSystem applies [Substitute] to every equation of s.
func SubstituteSystem(name string, replacement expr.Expr, s expr.System) expr.System {
	eqs := s.Constraints()
	for i, eq := range eqs {
		eqs[i] = SubstituteEquation(name, replacement, eq)
	}
	return expr.NewSystem(eqs...)
}

// Bind replaces every variable that has an entry in values with the
// corresponding literal.
func Bind(values map[string]float64, e expr.Expr) expr.Expr {
	return substitute(e, func(n string) (expr.Expr, bool) {
		v, ok := values[n]
		return expr.Literal{Value: v}, ok
	})
}

func substitute(e expr.Expr, lookup func(string) (expr.Expr, bool)) expr.Expr {
	return expr.Visit[expr.Expr](e, substituter{lookup: lookup})
}

type substituter struct {
	expr.Funcs[expr.Expr]
	lookup func(string) (expr.Expr, bool)
}

func (s substituter) VisitLiteral(e expr.Literal) expr.Expr { return e }

func (s substituter) VisitVariable(e expr.Variable) expr.Expr {
	if r, ok := s.lookup(e.Name); ok {
		return r
	}
	return e
}

func (s substituter) VisitAddition(e expr.Addition) expr.Expr {
	return expr.Addition{Left: s.visit(e.Left), Right: s.visit(e.Right)}
}

func (s substituter) VisitSubtraction(e expr.Subtraction) expr.Expr {
	return expr.Subtraction{Left: s.visit(e.Left), Right: s.visit(e.Right)}
}

func (s substituter) VisitMultiplication(e expr.Multiplication) expr.Expr {
	return expr.Multiplication{Left: s.visit(e.Left), Right: s.visit(e.Right)}
}

func (s substituter) VisitDivision(e expr.Division) expr.Expr {
	return expr.Division{Left: s.visit(e.Left), Right: s.visit(e.Right)}
}

func (s substituter) visit(e expr.Expr) expr.Expr {
	return expr.Visit[expr.Expr](e, s)
}
