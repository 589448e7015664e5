package algebra

import (
	"slices"
	"strings"

	"github.com/matzehuels/spanlayout/pkg/expr"
)

// Expand returns the canonical sum-of-products form of e.
//
// The result satisfies:
//   - multiplication and division are distributed over addition and
//     subtraction: x*(y+z) becomes x*y + x*z and (a-b)/(x+y) becomes
//     a/(x+y) - b/(x+y);
//   - purely literal sub-expressions are folded to one literal;
//   - each product chain starts with its literal coefficient, if any
//     (x*5*y becomes 5*x*y), and factors are ordered by name;
//   - terms with the same factors are combined, so x - x + 5 becomes 5;
//   - non-literal terms come first, followed by one trailing constant.
//
// Division by a literal scales the numerator. Other quotients stay
// [expr.Division] nodes; fractions are never combined. A denominator that
// reduces to zero is kept as a division by the literal 0, which
// [HasZeroDivision] detects.
func Expand(e expr.Expr) expr.Expr {
	return build(expr.Visit[[]term](e, expander{}))
}

// ExpandEquation expands the expression of eq.
func ExpandEquation(eq expr.Equation) expr.Equation {
	return expr.Equation{Expr: Expand(eq.Expr)}
}

// HasZeroDivision reports whether s contains a division by the literal 0.
func HasZeroDivision(s expr.Statement) bool {
	found := false
	expr.Walk(s, expr.Funcs[struct{}]{Division: func(d expr.Division) struct{} {
		if d.Right == (expr.Literal{}) {
			found = true
		}
		return struct{}{}
	}})
	return found
}

// term is coef times the product of factors. Factors are variables or
// quotients that could not be distributed, sorted by their rendering.
type term struct {
	coef    float64
	factors []expr.Expr
}

func (t term) key() string {
	parts := make([]string, len(t.factors))
	for i, f := range t.factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

func (t term) expr() expr.Expr {
	if len(t.factors) == 0 {
		return expr.Literal{Value: t.coef}
	}
	var acc expr.Expr
	if t.coef != 1 {
		acc = expr.Literal{Value: t.coef}
	}
	for _, f := range t.factors {
		if acc == nil {
			acc = f
			continue
		}
		acc = expr.Multiplication{Left: acc, Right: f}
	}
	return acc
}

func newTerm(coef float64, factors []expr.Expr) term {
	slices.SortStableFunc(factors, func(a, b expr.Expr) int {
		return strings.Compare(a.String(), b.String())
	})
	return term{coef: coef, factors: factors}
}

// combine merges like terms, keeping the order in which each first appears,
// and drops terms whose coefficient vanished.
func combine(ts []term) []term {
	index := make(map[string]int, len(ts))
	out := make([]term, 0, len(ts))
	for _, t := range ts {
		k := t.key()
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, t)
			continue
		}
		if cancels(out[i].coef, t.coef) {
			out[i].coef = 0
		} else {
			out[i].coef += t.coef
		}
	}
	return slices.DeleteFunc(out, func(t term) bool { return t.coef == 0 })
}

func negate(ts []term) []term {
	out := make([]term, len(ts))
	for i, t := range ts {
		out[i] = term{coef: -t.coef, factors: t.factors}
	}
	return out
}

func multiply(a, b []term) []term {
	out := make([]term, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			factors := make([]expr.Expr, 0, len(x.factors)+len(y.factors))
			factors = append(factors, x.factors...)
			factors = append(factors, y.factors...)
			out = append(out, newTerm(x.coef*y.coef, factors))
		}
	}
	return combine(out)
}

func divide(num, den []term) []term {
	if len(den) == 0 {
		return []term{{coef: 1, factors: []expr.Expr{
			expr.Division{Left: build(num), Right: expr.Literal{}},
		}}}
	}

	var divisor expr.Expr
	scale := 1.0
	if len(den) == 1 {
		scale = den[0].coef
		if len(den[0].factors) > 0 {
			divisor = term{coef: 1, factors: den[0].factors}.expr()
		}
	} else {
		divisor = build(den)
	}

	out := make([]term, 0, len(num))
	for _, t := range num {
		coef := t.coef / scale
		switch {
		case divisor == nil:
			out = append(out, term{coef: coef, factors: t.factors})
		case len(t.factors) == 0:
			out = append(out, term{coef: 1, factors: []expr.Expr{
				expr.Division{Left: expr.Literal{Value: coef}, Right: divisor},
			}})
		default:
			numerator := term{coef: 1, factors: t.factors}.expr()
			out = append(out, term{coef: coef, factors: []expr.Expr{
				expr.Division{Left: numerator, Right: divisor},
			}})
		}
	}
	return combine(out)
}

// build renders terms as a left-associated chain. Negative coefficients
// after the first term become subtractions.
func build(ts []term) expr.Expr {
	var acc expr.Expr
	constant := 0.0
	for _, t := range ts {
		if len(t.factors) == 0 {
			constant += t.coef
			continue
		}
		acc = appendTerm(acc, t)
	}
	if constant != 0 || acc == nil {
		acc = appendTerm(acc, term{coef: constant})
	}
	return acc
}

func appendTerm(acc expr.Expr, t term) expr.Expr {
	switch {
	case acc == nil:
		return t.expr()
	case t.coef < 0:
		return expr.Subtraction{Left: acc, Right: term{coef: -t.coef, factors: t.factors}.expr()}
	default:
		return expr.Addition{Left: acc, Right: t.expr()}
	}
}

// expander computes the combined terms of an expression.
type expander struct {
	expr.Funcs[[]term]
}

func (expander) VisitLiteral(e expr.Literal) []term {
	if e.Value == 0 {
		return nil
	}
	return []term{{coef: e.Value}}
}

func (expander) VisitVariable(e expr.Variable) []term {
	return []term{{coef: 1, factors: []expr.Expr{e}}}
}

func (x expander) VisitAddition(e expr.Addition) []term {
	return combine(append(x.terms(e.Left), x.terms(e.Right)...))
}

func (x expander) VisitSubtraction(e expr.Subtraction) []term {
	return combine(append(x.terms(e.Left), negate(x.terms(e.Right))...))
}

func (x expander) VisitMultiplication(e expr.Multiplication) []term {
	return multiply(x.terms(e.Left), x.terms(e.Right))
}

func (x expander) VisitDivision(e expr.Division) []term {
	return divide(x.terms(e.Left), x.terms(e.Right))
}

func (x expander) terms(e expr.Expr) []term {
	return expr.Visit[[]term](e, x)
}
