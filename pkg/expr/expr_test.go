package expr

import "testing"

func TestString(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"literal", Lit(5), "5"},
		{"fraction", Lit(0.25), "0.25"},
		{"negative", Lit(-2), "-2"},
		{"large without exponent", Lit(1e21), "1000000000000000000000"},
		{"variable", Var("A.width"), "A.width"},
		{"sum", Add(Mul(3, x), 7), "3 * x + 7"},
		{"left chain", Sub(Add(x, y), z), "x + y - z"},
		{"right grouping", Sub(x, Add(y, z)), "x - (y + z)"},
		{"product of sum", Mul(Add(x, 1), y), "(x + 1) * y"},
		{"nested divisor", Div(x, Mul(y, z)), "x / (y * z)"},
		{"quotient in sum", Add(Div(x, y), z), "x / y + z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"same literal", Lit(1), Lit(1), true},
		{"different literal", Lit(1), Lit(2), false},
		{"same tree", Add(Var("x"), 1), Add(Var("x"), 1), true},
		{"swapped operands", Add(Var("x"), 1), Add(1, Var("x")), false},
		{"different operator", Add(Var("x"), 1), Sub(Var("x"), 1), false},
		{"deep tree", Mul(Add(Var("a"), Var("b")), Div(Var("c"), 2)), Mul(Add(Var("a"), Var("b")), Div(Var("c"), 2)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLift(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Expr
	}{
		{"int", 3, Lit(3)},
		{"int64", int64(4), Lit(4)},
		{"float64", 2.5, Lit(2.5)},
		{"expr", Var("x"), Var("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lift(tt.in); got != tt.want {
				t.Errorf("Lift(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLiftPanicsOnUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lift(string) should panic")
		}
	}()
	Lift("x")
}

func TestSum(t *testing.T) {
	if got := Sum(); got != Lit(0) {
		t.Errorf("Sum() = %v, want 0", got)
	}
	got := Sum(Var("a"), Var("b"), Var("c"))
	want := Add(Add(Var("a"), Var("b")), Var("c"))
	if got != want {
		t.Errorf("Sum(a, b, c) = %v, want %v", got, want)
	}
}
