package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/spanlayout/pkg/expr"
)

var (
	a = expr.Var("a")
	b = expr.Var("b")
	x = expr.Var("x")
	y = expr.Var("y")
	z = expr.Var("z")
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		in   expr.Expr
		want string
	}{
		{"distributes over sum", expr.Mul(x, expr.Add(y, z)), "x * y + x * z"},
		{"distributes quotient over numerator", expr.Div(expr.Sub(a, b), expr.Add(x, y)), "a / (x + y) - b / (x + y)"},
		{"hoists coefficient", expr.Mul(expr.Mul(x, 5), y), "5 * x * y"},
		{"orders factors", expr.Mul(y, x), "x * y"},
		{"constant trails", expr.Add(3, x), "x + 3"},
		{"folds literals", expr.Add(2, expr.Mul(3, 4)), "14"},
		{"negative constant", expr.Sub(5, 8), "-3"},
		{"cancels like terms", expr.Add(expr.Sub(x, x), 5), "5"},
		{"combines like terms", expr.Sub(x, expr.Mul(3, x)), "-2 * x"},
		{"keeps surviving term", expr.Sub(expr.Mul(2, expr.Sub(x, y)), expr.Mul(2, x)), "-2 * y"},
		{"multiply by zero", expr.Mul(x, 0), "0"},
		{"multiply by one", expr.Mul(x, 1), "x"},
		{"divide by one", expr.Div(x, 1), "x"},
		{"divide by literal", expr.Div(expr.Add(expr.Mul(2, x), 4), 2), "x + 2"},
		{"product of sums", expr.Mul(expr.Add(a, b), expr.Add(x, y)), "a * x + a * y + b * x + b * y"},
		{"scales by denominator coefficient", expr.Div(1, expr.Mul(2, y)), "0.5 / y"},
		{"keeps division by variable", expr.Div(expr.Mul(3, x), y), "3 * (x / y)"},
		{"zero denominator", expr.Div(x, expr.Sub(y, y)), "x / 0"},
		{"rounding noise cancels", expr.Sub(expr.Add(expr.Mul(0.1, x), expr.Mul(0.2, x)), expr.Mul(0.3, x)), "0"},
		{"subtraction of sum", expr.Sub(x, expr.Add(y, 1)), "x - y - 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.in).String(); got != tt.want {
				t.Errorf("Expand(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandIdempotent(t *testing.T) {
	inputs := []expr.Expr{
		expr.Mul(expr.Add(a, b), expr.Add(x, y)),
		expr.Div(expr.Sub(a, b), expr.Add(x, y)),
		expr.Sub(expr.Mul(-1, x), 7),
		expr.Div(5, expr.Add(x, 1)),
		expr.Div(expr.Mul(3, x), expr.Mul(2, y)),
		expr.Div(x, expr.Sub(y, y)),
		expr.Sub(expr.Var("B.width"), expr.Add(800, expr.Mul(expr.Var("B.width_growth"), expr.Sub(expr.Var("width"), 1000)))),
		expr.Lit(0),
	}

	for _, in := range inputs {
		t.Run(in.String(), func(t *testing.T) {
			once := Expand(in)
			twice := Expand(once)
			if !expr.Equal(once, twice) {
				t.Errorf("Expand not idempotent:\n once: %v\ntwice: %v", once, twice)
			}
		})
	}
}

func TestExpandTree(t *testing.T) {
	got := Expand(expr.Sub(expr.Mul(3, x), expr.Add(y, 7)))
	want := expr.Subtraction{
		Left: expr.Subtraction{
			Left:  expr.Multiplication{Left: expr.Lit(3), Right: x},
			Right: y,
		},
		Right: expr.Lit(7),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}
}

func TestHasZeroDivision(t *testing.T) {
	tests := []struct {
		name string
		in   expr.Statement
		want bool
	}{
		{"plain", expr.Div(x, y), false},
		{"literal zero", expr.Div(x, 0), true},
		{"nested", expr.Add(1, expr.Mul(2, expr.Div(x, 0))), true},
		{"in equation", expr.Eq(expr.Div(1, 0), x), true},
		{"unreduced zero", expr.Div(x, expr.Sub(y, y)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasZeroDivision(tt.in); got != tt.want {
				t.Errorf("HasZeroDivision(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
