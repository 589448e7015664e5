package algebra

import (
	"slices"

	"github.com/matzehuels/spanlayout/pkg/expr"
)

// Kind orders expressions by how hard they are to solve.
type Kind int

const (
	// Constant expressions reference no variables.
	Constant Kind = iota + 1
	// Monomial expressions are a single product of variables.
	Monomial
	// Linear expressions are sums whose terms hold at most one variable.
	Linear
	// Polynomial expressions have terms with several variable factors.
	Polynomial
	// NonLinear expressions divide by a variable.
	NonLinear
)

var kindNames = map[Kind]string{
	Constant:   "constant",
	Monomial:   "monomial",
	Linear:     "linear",
	Polynomial: "polynomial",
	NonLinear:  "non-linear",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Category is the result of [Classify].
type Category struct {
	Kind      Kind
	Variables []string
}

// Classify categorizes the expanded form of e.
func Classify(e expr.Expr) Category {
	ts := expr.Visit[[]term](e, expander{})
	cat := Category{Kind: Constant, Variables: Variables(build(ts))}
	if len(cat.Variables) == 0 {
		return cat
	}

	for _, t := range ts {
		if len(t.factors) > 0 {
			cat.Kind = max(cat.Kind, termKind(t))
		}
	}
	if len(ts) == 1 && cat.Kind != NonLinear {
		cat.Kind = Monomial
	}
	return cat
}

// ClassifySystem returns the hardest category among the equations of s.
func ClassifySystem(s expr.System) Category {
	cat := Category{Kind: Constant}
	for _, eq := range s.Constraints() {
		c := Classify(eq.Expr)
		cat.Kind = max(cat.Kind, c.Kind)
		for _, v := range c.Variables {
			if !slices.Contains(cat.Variables, v) {
				cat.Variables = append(cat.Variables, v)
			}
		}
	}
	return cat
}

func termKind(t term) Kind {
	degree := 0
	for _, f := range t.factors {
		switch f := f.(type) {
		case expr.Variable:
			degree++
		case expr.Division:
			if len(Variables(f.Right)) > 0 {
				return NonLinear
			}
			degree += len(Variables(f.Left))
		}
	}
	if degree > 1 {
		return Polynomial
	}
	return Linear
}
