package solver

import (
	"github.com/matzehuels/spanlayout/pkg/algebra"
	"github.com/matzehuels/spanlayout/pkg/expr"
)

// Isolate solves eq for the variable name and returns the expression name
// equals. It reports false when eq does not mention name, mentions it
// non-linearly or in a denominator, or when the coefficient of name
// reduces to zero.
func Isolate(eq expr.Equation, name string) (expr.Expr, bool) {
	var num, den []expr.Expr
	for _, t := range signedTerms(algebra.Expand(eq.Expr)) {
		if !algebra.Contains(t.e, name) {
			num = append(num, t.negated())
			continue
		}
		c := expr.Visit[coefficient](t.e, coefficientOf{name: name})
		if !c.ok {
			return nil, false
		}
		den = append(den, signed{e: c.e, neg: t.neg}.expr())
	}
	if len(den) == 0 {
		return nil, false
	}

	result := algebra.Expand(expr.Division{Left: expr.Sum(num...), Right: expr.Sum(den...)})
	if algebra.HasZeroDivision(result) || algebra.Contains(result, name) {
		return nil, false
	}
	return result, true
}

// signed is one additive term of an expanded expression.
type signed struct {
	e   expr.Expr
	neg bool
}

func (s signed) expr() expr.Expr {
	if s.neg {
		return expr.Multiplication{Left: expr.Literal{Value: -1}, Right: s.e}
	}
	return s.e
}

func (s signed) negated() expr.Expr {
	return signed{e: s.e, neg: !s.neg}.expr()
}

// signedTerms splits e at its top-level additions and subtractions.
func signedTerms(e expr.Expr) []signed {
	var out []signed
	var split func(e expr.Expr, neg bool)
	split = func(e expr.Expr, neg bool) {
		switch n := e.(type) {
		case expr.Addition:
			split(n.Left, neg)
			split(n.Right, neg)
		case expr.Subtraction:
			split(n.Left, neg)
			split(n.Right, !neg)
		default:
			out = append(out, signed{e: e, neg: neg})
		}
	}
	split(e, false)
	return out
}

// coefficient is the factor multiplying a variable within one term.
type coefficient struct {
	e  expr.Expr
	ok bool
}

// coefficientOf extracts the coefficient of name from a product or
// quotient. It accepts name only as a single factor outside any
// denominator.
type coefficientOf struct {
	expr.Funcs[coefficient]
	name string
}

func (c coefficientOf) VisitVariable(v expr.Variable) coefficient {
	if v.Name != c.name {
		return coefficient{}
	}
	return coefficient{e: expr.Literal{Value: 1}, ok: true}
}

func (c coefficientOf) VisitMultiplication(m expr.Multiplication) coefficient {
	inLeft, inRight := algebra.Contains(m.Left, c.name), algebra.Contains(m.Right, c.name)
	switch {
	case inLeft && !inRight:
		l := expr.Visit[coefficient](m.Left, c)
		return coefficient{e: expr.Multiplication{Left: l.e, Right: m.Right}, ok: l.ok}
	case inRight && !inLeft:
		r := expr.Visit[coefficient](m.Right, c)
		return coefficient{e: expr.Multiplication{Left: m.Left, Right: r.e}, ok: r.ok}
	}
	return coefficient{}
}

func (c coefficientOf) VisitDivision(d expr.Division) coefficient {
	if algebra.Contains(d.Right, c.name) {
		return coefficient{}
	}
	l := expr.Visit[coefficient](d.Left, c)
	return coefficient{e: expr.Division{Left: l.e, Right: d.Right}, ok: l.ok}
}
