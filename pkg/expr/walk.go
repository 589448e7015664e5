package expr

// Walk visits every node of s depth-first. Children are visited before the
// node itself: the operands of a binary node, the expression of an
// equation, and the equations of a system in order. Results returned by v
// are discarded.
func Walk[T any](s Statement, v Visitor[T]) {
	s.accept(&walker[T]{v: v})
}

// Inspect calls fn for every node of s in the order used by [Walk].
func Inspect(s Statement, fn func(Statement)) {
	Walk(s, Funcs[struct{}]{Statement: func(n Statement) struct{} {
		fn(n)
		return struct{}{}
	}})
}

type walker[T any] struct {
	v Visitor[T]
}

func (w *walker[T]) literal(e Literal)   { w.v.VisitLiteral(e) }
func (w *walker[T]) variable(e Variable) { w.v.VisitVariable(e) }

func (w *walker[T]) addition(e Addition) {
	e.Left.accept(w)
	e.Right.accept(w)
	w.v.VisitAddition(e)
}

func (w *walker[T]) subtraction(e Subtraction) {
	e.Left.accept(w)
	e.Right.accept(w)
	w.v.VisitSubtraction(e)
}

func (w *walker[T]) multiplication(e Multiplication) {
	e.Left.accept(w)
	e.Right.accept(w)
	w.v.VisitMultiplication(e)
}

func (w *walker[T]) division(e Division) {
	e.Left.accept(w)
	e.Right.accept(w)
	w.v.VisitDivision(e)
}

func (w *walker[T]) equation(e Equation) {
	e.Expr.accept(w)
	w.v.VisitEquation(e)
}

func (w *walker[T]) system(s System) {
	for _, eq := range s.constraints {
		eq.accept(w)
	}
	w.v.VisitSystem(s)
}
