package parser

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/spanlayout/pkg/errors"
	"github.com/matzehuels/spanlayout/pkg/expr"
)

func TestParseConstraint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare expression", "x + 1", "x + 1 = 0"},
		{"moves right side", "3 * x - y = 7", "3 * x - y - 7 = 0"},
		{"zero right side", "x - 5 = 0", "x - 5 = 0"},
		{"precedence", "a + b * c", "a + b * c = 0"},
		{"left associative", "x / 2 / y", "x / 2 / y = 0"},
		{"grouping", "a - (b - c)", "a - (b - c) = 0"},
		{"nested groups", "((x))", "x = 0"},
		{"signed literal", "x = -5", "x - -5 = 0"},
		{"binary minus before number", "x -3", "x - 3 = 0"},
		{"dotted names", "A.left + A.width = B.left", "A.left + A.width - B.left = 0"},
		{"growth names", "B.width_growth = 1", "B.width_growth - 1 = 0"},
		{"decimals", "0.5 * x = .25", "0.5 * x - 0.25 = 0"},
		{"tabs and spaces", "\tx\t*  2 ", "x * 2 = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := ParseConstraint(tt.in)
			if err != nil {
				t.Fatalf("ParseConstraint(%q) error: %v", tt.in, err)
			}
			if got := eq.String(); got != tt.want {
				t.Errorf("ParseConstraint(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseConstraintTree(t *testing.T) {
	eq, err := ParseConstraint("2 * (x + 1) = y")
	if err != nil {
		t.Fatal(err)
	}
	x, y := expr.Var("x"), expr.Var("y")
	want := expr.Eq(expr.Mul(2, expr.Add(x, 1)), y)
	if eq != want {
		t.Errorf("got %v, want %v", eq, want)
	}
}

func TestParseConstraintErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		column int
	}{
		{"trailing operator", "x +", 4},
		{"unclosed group", "(x + 1", 1},
		{"unopened group", "x + 1)", 6},
		{"two equals", "x = y = z", 7},
		{"equation as operand", "(x = 1) + 2", 9},
		{"digit-led name", "2x", 2},
		{"unexpected character", "x $ y", 3},
		{"two decimal points", "1.2.3", 4},
		{"missing operator", "x y", 3},
		{"double operator", "x * * y", 5},
		{"empty group", "()", 2},
		{"leading equals", "= 5", 1},
		{"unary minus on name", "-x", 1},
		{"detached minus", "- 5", 1},
		{"empty", "   ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConstraint(tt.in)
			if err == nil {
				t.Fatalf("ParseConstraint(%q) succeeded, want error", tt.in)
			}
			if !errors.Is(err, errors.ErrCodeSyntax) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeSyntax)
			}
			var serr *SyntaxError
			if !stderrors.As(err, &serr) {
				t.Fatalf("error %v does not wrap *SyntaxError", err)
			}
			if serr.Column != tt.column {
				t.Errorf("column = %d, want %d (%s)", serr.Column, tt.column, serr.Message)
			}
		})
	}
}

func TestParse(t *testing.T) {
	src := "# two unknowns\n3 * x - y = 7\r\n\n  2 * x + 3 * y = 1\n"
	system, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if system.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", system.Len())
	}
	want := "3 * x - y - 7 = 0\n2 * x + 3 * y - 1 = 0"
	if got := system.String(); got != want {
		t.Errorf("Parse() =\n%s\nwant\n%s", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	system, err := Parse("\n# nothing\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if system.Len() != 0 {
		t.Errorf("Len() = %d, want 0", system.Len())
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse("x + 1 = 0\n\n# comment\ny +")
	var serr *SyntaxError
	if !stderrors.As(err, &serr) {
		t.Fatalf("error %v does not wrap *SyntaxError", err)
	}
	if serr.Line != 4 || serr.Column != 4 {
		t.Errorf("position = %d:%d, want 4:4", serr.Line, serr.Column)
	}
	if got, want := serr.Error(), "line 4, column 4: missing operand at end of constraint"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if d := errors.Details(err); d["line"] != 4 || d["column"] != 4 {
		t.Errorf("Details() = %v, want line 4 and column 4", d)
	}
}

func TestParseExpr(t *testing.T) {
	e, err := ParseExpr("x * (y + 2)")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e.String(), "x * (y + 2)"; got != want {
		t.Errorf("ParseExpr() = %q, want %q", got, want)
	}

	if _, err := ParseExpr("x = 2"); !errors.Is(err, errors.ErrCodeSyntax) {
		t.Errorf("ParseExpr with '=' error = %v, want %v", err, errors.ErrCodeSyntax)
	}
}

func TestParseStatement(t *testing.T) {
	s, err := ParseStatement("x + 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(expr.Expr); !ok {
		t.Errorf("ParseStatement(\"x + 1\") = %T, want expression", s)
	}

	s, err = ParseStatement("x = 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(expr.Equation); !ok {
		t.Errorf("ParseStatement(\"x = 1\") = %T, want equation", s)
	}
}
