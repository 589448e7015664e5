package expr

import "strconv"

// Operator binding strengths used when rendering. The parser uses the same
// ordering.
const (
	precSum     = 1
	precProduct = 2
	precAtom    = 3
)

var precedenceOf = Funcs[int]{
	Expression:     func(Expr) int { return precAtom },
	Addition:       func(Addition) int { return precSum },
	Subtraction:    func(Subtraction) int { return precSum },
	Multiplication: func(Multiplication) int { return precProduct },
	Division:       func(Division) int { return precProduct },
}

func precedence(e Expr) int { return Visit[int](e, precedenceOf) }

// FormatNumber renders v without an exponent so the result can be read back
// by the constraint parser.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (e Literal) String() string        { return FormatNumber(e.Value) }
func (e Variable) String() string       { return e.Name }
func (e Addition) String() string       { return binary(e.Left, " + ", e.Right, precSum) }
func (e Subtraction) String() string    { return binary(e.Left, " - ", e.Right, precSum) }
func (e Multiplication) String() string { return binary(e.Left, " * ", e.Right, precProduct) }
func (e Division) String() string       { return binary(e.Left, " / ", e.Right, precProduct) }

// binary parenthesizes operands only where the left-associative grammar
// would otherwise read a different tree.
func binary(l Expr, op string, r Expr, prec int) string {
	ls, rs := l.String(), r.String()
	if precedence(l) < prec {
		ls = "(" + ls + ")"
	}
	if precedence(r) <= prec {
		rs = "(" + rs + ")"
	}
	return ls + op + rs
}
