// Package expr defines the immutable expression trees, equations and
// constraint systems that the rest of spanlayout manipulates.
//
// # Nodes
//
// An [Expr] is one of six comparable value types: [Literal], [Variable],
// [Addition], [Subtraction], [Multiplication] and [Division]. Because every
// node is a plain value whose children are interface values, two trees can be
// compared with == (see [Equal]) and never need to be cloned.
//
// Trees are usually built with the constructors, which accept Go numbers as
// well as expressions:
//
//	x := expr.Var("x")
//	e := expr.Sub(expr.Mul(3, x), 7) // 3 * x - 7
//
// # Equations and Systems
//
// An [Equation] asserts that its expression equals zero. A [System] is an
// ordered list of equations; [System.Merge] and [System.Remove] return new
// systems and leave their receivers untouched.
//
// # Visitors
//
// [Visit] dispatches a [Statement] to the matching method of a [Visitor].
// [Funcs] builds a Visitor from optional callbacks: a missing kind-specific
// callback falls back to Expression, which falls back to Statement. [Walk]
// visits every node depth-first, children before parents.
package expr
