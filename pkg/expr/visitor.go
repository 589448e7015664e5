package expr

// Visitor receives a callback for each concrete statement kind. Implement it
// directly, or use [Funcs] to supply only the cases of interest.
type Visitor[T any] interface {
	VisitLiteral(Literal) T
	VisitVariable(Variable) T
	VisitAddition(Addition) T
	VisitSubtraction(Subtraction) T
	VisitMultiplication(Multiplication) T
	VisitDivision(Division) T
	VisitEquation(Equation) T
	VisitSystem(System) T
}

// Visit dispatches s to the method of v matching its concrete kind and
// returns the result.
func Visit[T any](s Statement, v Visitor[T]) T {
	d := &visit[T]{v: v}
	s.accept(d)
	return d.out
}

// dispatcher is the double-dispatch target of Statement.accept.
type dispatcher interface {
	literal(Literal)
	variable(Variable)
	addition(Addition)
	subtraction(Subtraction)
	multiplication(Multiplication)
	division(Division)
	equation(Equation)
	system(System)
}

type visit[T any] struct {
	v   Visitor[T]
	out T
}

func (d *visit[T]) literal(e Literal)               { d.out = d.v.VisitLiteral(e) }
func (d *visit[T]) variable(e Variable)             { d.out = d.v.VisitVariable(e) }
func (d *visit[T]) addition(e Addition)             { d.out = d.v.VisitAddition(e) }
func (d *visit[T]) subtraction(e Subtraction)       { d.out = d.v.VisitSubtraction(e) }
func (d *visit[T]) multiplication(e Multiplication) { d.out = d.v.VisitMultiplication(e) }
func (d *visit[T]) division(e Division)             { d.out = d.v.VisitDivision(e) }
func (d *visit[T]) equation(e Equation)             { d.out = d.v.VisitEquation(e) }
func (d *visit[T]) system(s System)                 { d.out = d.v.VisitSystem(s) }

// Funcs is a Visitor assembled from optional callbacks.
//
// Unset kind callbacks fall back in tiers: the six expression kinds fall
// back to Expression, Expression and the Equation and System kinds fall back
// to Statement, and an unset Statement yields the zero value of T.
type Funcs[T any] struct {
	Statement  func(Statement) T
	Expression func(Expr) T

	Literal        func(Literal) T
	Variable       func(Variable) T
	Addition       func(Addition) T
	Subtraction    func(Subtraction) T
	Multiplication func(Multiplication) T
	Division       func(Division) T
	Equation       func(Equation) T
	System         func(System) T
}

// VisitStatement is the last fallback tier.
func (f Funcs[T]) VisitStatement(s Statement) T {
	if f.Statement != nil {
		return f.Statement(s)
	}
	var zero T
	return zero
}

// VisitExpression is the fallback for all expression kinds.
func (f Funcs[T]) VisitExpression(e Expr) T {
	if f.Expression != nil {
		return f.Expression(e)
	}
	return f.VisitStatement(e)
}

func (f Funcs[T]) VisitLiteral(e Literal) T {
	if f.Literal != nil {
		return f.Literal(e)
	}
	return f.VisitExpression(e)
}

func (f Funcs[T]) VisitVariable(e Variable) T {
	if f.Variable != nil {
		return f.Variable(e)
	}
	return f.VisitExpression(e)
}

func (f Funcs[T]) VisitAddition(e Addition) T {
	if f.Addition != nil {
		return f.Addition(e)
	}
	return f.VisitExpression(e)
}

func (f Funcs[T]) VisitSubtraction(e Subtraction) T {
	if f.Subtraction != nil {
		return f.Subtraction(e)
	}
	return f.VisitExpression(e)
}

func (f Funcs[T]) VisitMultiplication(e Multiplication) T {
	if f.Multiplication != nil {
		return f.Multiplication(e)
	}
	return f.VisitExpression(e)
}

func (f Funcs[T]) VisitDivision(e Division) T {
	if f.Division != nil {
		return f.Division(e)
	}
	return f.VisitExpression(e)
}

func (f Funcs[T]) VisitEquation(e Equation) T {
	if f.Equation != nil {
		return f.Equation(e)
	}
	return f.VisitStatement(e)
}

func (f Funcs[T]) VisitSystem(s System) T {
	if f.System != nil {
		return f.System(s)
	}
	return f.VisitStatement(s)
}

var _ Visitor[int] = Funcs[int]{}
