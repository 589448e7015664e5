// Package algebra rewrites expression trees from package expr.
//
// [Expand] brings an expression to a canonical sum of products: products
// and quotients are distributed over sums, literal sub-expressions are
// folded, like terms are combined, each product carries at most one literal
// coefficient at its front, and a single combined constant trails the
// non-constant terms. Expand is idempotent.
//
// [Substitute] replaces a named variable with another tree, [Bind] replaces
// several variables with numbers, and [Evaluate] reduces an expression to a
// number when no unknowns remain.
//
// Floating point comparisons throughout spanlayout go through [Approx].
package algebra
