package expr

import "fmt"

// Statement is implemented by every node a [Visitor] can traverse:
// expressions, equations and systems.
type Statement interface {
	fmt.Stringer
	accept(d dispatcher)
}

// Expr is an arithmetic expression over real-valued named unknowns.
type Expr interface {
	Statement
	isExpr()
}

// Literal is a numeric constant.
type Literal struct {
	Value float64
}

// Variable is a named unknown such as "width" or "A.left".
type Variable struct {
	Name string
}

// Addition is Left + Right.
type Addition struct {
	Left, Right Expr
}

// Subtraction is Left - Right.
type Subtraction struct {
	Left, Right Expr
}

// Multiplication is Left * Right.
type Multiplication struct {
	Left, Right Expr
}

// Division is Left / Right.
type Division struct {
	Left, Right Expr
}

func (Literal) isExpr()        {}
func (Variable) isExpr()       {}
func (Addition) isExpr()       {}
func (Subtraction) isExpr()    {}
func (Multiplication) isExpr() {}
func (Division) isExpr()       {}

func (e Literal) accept(d dispatcher)        { d.literal(e) }
func (e Variable) accept(d dispatcher)       { d.variable(e) }
func (e Addition) accept(d dispatcher)       { d.addition(e) }
func (e Subtraction) accept(d dispatcher)    { d.subtraction(e) }
func (e Multiplication) accept(d dispatcher) { d.multiplication(e) }
func (e Division) accept(d dispatcher)       { d.division(e) }

// Lit returns the literal v.
func Lit(v float64) Literal { return Literal{Value: v} }

// Var returns the variable called name.
func Var(name string) Variable { return Variable{Name: name} }

// Add returns l + r. Operands may be expressions or Go numbers.
func Add(l, r any) Expr { return Addition{Left: Lift(l), Right: Lift(r)} }

// Sub returns l - r. Operands may be expressions or Go numbers.
func Sub(l, r any) Expr { return Subtraction{Left: Lift(l), Right: Lift(r)} }

// Mul returns l * r. Operands may be expressions or Go numbers.
func Mul(l, r any) Expr { return Multiplication{Left: Lift(l), Right: Lift(r)} }

// Div returns l / r. Operands may be expressions or Go numbers.
func Div(l, r any) Expr { return Division{Left: Lift(l), Right: Lift(r)} }

// Sum folds terms into a left-associated chain of additions.
// An empty sum is the literal 0.
func Sum(terms ...Expr) Expr {
	if len(terms) == 0 {
		return Literal{}
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Addition{Left: acc, Right: t}
	}
	return acc
}

// Lift converts an operand to an Expr. Expressions are returned as is and Go
// integer and floating point values become a [Literal]. Any other type is a
// programming error and panics.
func Lift(v any) Expr {
	switch v := v.(type) {
	case Expr:
		return v
	case float64:
		return Literal{Value: v}
	case float32:
		return Literal{Value: float64(v)}
	case int:
		return Literal{Value: float64(v)}
	case int64:
		return Literal{Value: float64(v)}
	case int32:
		return Literal{Value: float64(v)}
	}
	panic(fmt.Sprintf("expr: cannot use %T as an operand", v))
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Expr) bool { return a == b }
