package algebra

import "github.com/matzehuels/spanlayout/pkg/expr"

// Evaluate reduces e to a number. It reports false when e still references
// a variable or divides by zero.
func Evaluate(e expr.Expr) (float64, bool) {
	lit, ok := Expand(e).(expr.Literal)
	return lit.Value, ok
}
