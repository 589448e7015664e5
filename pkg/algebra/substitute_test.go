package algebra

import (
	"slices"
	"testing"

	"github.com/matzehuels/spanlayout/pkg/expr"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name        string
		variable    string
		replacement expr.Expr
		in          expr.Expr
		want        expr.Expr
	}{
		{
			name:        "every occurrence",
			variable:    "x",
			replacement: expr.Lit(3),
			in:          expr.Add(x, expr.Mul(2, x)),
			want:        expr.Add(3, expr.Mul(2, 3)),
		},
		{
			name:        "with expression",
			variable:    "y",
			replacement: expr.Sub(z, 1),
			in:          expr.Div(x, y),
			want:        expr.Div(x, expr.Sub(z, 1)),
		},
		{
			name:        "no match",
			variable:    "w",
			replacement: expr.Lit(1),
			in:          expr.Sub(x, expr.Div(y, z)),
			want:        expr.Sub(x, expr.Div(y, z)),
		},
		{
			name:        "identity",
			variable:    "x",
			replacement: x,
			in:          expr.Mul(x, y),
			want:        expr.Mul(x, y),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.variable, tt.replacement, tt.in)
			if !expr.Equal(got, tt.want) {
				t.Errorf("Substitute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubstituteSystem(t *testing.T) {
	s := expr.NewSystem(expr.Eq(x, y), expr.Eq(y, 2))
	got := SubstituteSystem("y", expr.Lit(2), s)
	want := expr.NewSystem(expr.Eq(x, 2), expr.Eq(expr.Lit(2), 2))
	if !got.Equal(want) {
		t.Errorf("SubstituteSystem() = %v, want %v", got, want)
	}
	if s.At(0) != expr.Eq(x, y) {
		t.Error("SubstituteSystem must not modify its input")
	}
}

func TestBind(t *testing.T) {
	got := Bind(map[string]float64{"x": 2, "z": 4}, expr.Add(x, expr.Mul(y, z)))
	want := expr.Add(2, expr.Mul(y, 4))
	if !expr.Equal(got, want) {
		t.Errorf("Bind() = %v, want %v", got, want)
	}
}

func TestVariables(t *testing.T) {
	tests := []struct {
		name string
		in   expr.Statement
		want []string
	}{
		{"none", expr.Add(1, 2), nil},
		{"first appearance order", expr.Add(y, expr.Mul(x, y)), []string{"y", "x"}},
		{"system", expr.NewSystem(expr.Eq(a, 1), expr.Eq(b, a)), []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Variables(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("Variables() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	e := expr.Div(x, expr.Add(y, 1))
	if !Contains(e, "y") {
		t.Error("Contains(y) = false, want true")
	}
	if Contains(e, "z") {
		t.Error("Contains(z) = true, want false")
	}
}
