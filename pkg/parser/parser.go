package parser

import (
	"fmt"
	"strings"

	"github.com/matzehuels/spanlayout/pkg/errors"
	"github.com/matzehuels/spanlayout/pkg/expr"
)

// precedence of the binary operators. "(" is pushed onto the operator
// stack as a sentinel with the lowest binding.
var precedence = map[string]int{
	"=": 0,
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

const sentinel = "("

// Parse reads a constraint system, one constraint per line. Blank lines and
// lines starting with "#" are skipped.
func Parse(src string) (expr.System, error) {
	var eqs []expr.Equation
	for i, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		s, serr := parseLine(line)
		if serr != nil {
			serr.Line = i + 1
			return expr.System{}, wrapSyntax(serr)
		}
		eqs = append(eqs, asEquation(s))
	}
	return expr.NewSystem(eqs...), nil
}

// ParseConstraint reads a single constraint. A constraint without "=" is
// its expression constrained to zero.
func ParseConstraint(line string) (expr.Equation, error) {
	s, err := ParseStatement(line)
	if err != nil {
		return expr.Equation{}, err
	}
	return asEquation(s), nil
}

// ParseStatement reads a single line and returns an [expr.Equation] when
// the line contains "=", or an [expr.Expr] otherwise.
func ParseStatement(line string) (expr.Statement, error) {
	if strings.TrimSpace(line) == "" {
		return nil, wrapSyntax(&SyntaxError{Column: 1, Message: "empty constraint"})
	}
	s, serr := parseLine(line)
	if serr != nil {
		return nil, wrapSyntax(serr)
	}
	return s, nil
}

// wrapSyntax codes serr and exposes its position as error details.
func wrapSyntax(serr *SyntaxError) error {
	err := errors.Wrap(errors.ErrCodeSyntax, serr, "invalid constraint").WithDetail("column", serr.Column)
	if serr.Line > 0 {
		err = err.WithDetail("line", serr.Line)
	}
	return err
}

// ParseExpr reads an expression that must not contain "=".
func ParseExpr(src string) (expr.Expr, error) {
	s, err := ParseStatement(src)
	if err != nil {
		return nil, err
	}
	e, ok := s.(expr.Expr)
	if !ok {
		return nil, errors.New(errors.ErrCodeSyntax, "expected an expression, got an equation")
	}
	return e, nil
}

func asEquation(s expr.Statement) expr.Equation {
	if eq, ok := s.(expr.Equation); ok {
		return eq
	}
	return expr.Equation{Expr: s.(expr.Expr)}
}

type operator struct {
	text string
	col  int
}

// shunter holds the two stacks of the shunting-yard algorithm.
type shunter struct {
	operands  []expr.Statement
	operators []operator
}

func parseLine(line string) (expr.Statement, *SyntaxError) {
	toks, serr := lex(line)
	if serr != nil {
		return nil, serr
	}

	var p shunter
	expectOperand := true
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if expectOperand {
			switch {
			case tok.kind == tokNumber:
				p.operands = append(p.operands, expr.Literal{Value: tok.value})
				expectOperand = false
			case tok.kind == tokName:
				p.operands = append(p.operands, expr.Variable{Name: tok.text})
				expectOperand = false
			case tok.kind == tokOpen:
				p.operators = append(p.operators, operator{text: sentinel, col: tok.col})
			case tok.text == "-" && i+1 < len(toks) && toks[i+1].kind == tokNumber && toks[i+1].col == tok.col+1:
				i++
				p.operands = append(p.operands, expr.Literal{Value: -toks[i].value})
				expectOperand = false
			default:
				return nil, &SyntaxError{Column: tok.col, Message: fmt.Sprintf("expected a number, name or '(' but found %q", tok.text)}
			}
			continue
		}

		switch tok.kind {
		case tokOperator:
			prec := precedence[tok.text]
			for len(p.operators) > 0 {
				top := p.operators[len(p.operators)-1]
				if top.text == sentinel || precedence[top.text] < prec {
					break
				}
				if serr := p.reduce(); serr != nil {
					return nil, serr
				}
			}
			p.operators = append(p.operators, operator{text: tok.text, col: tok.col})
			expectOperand = true
		case tokClose:
			if serr := p.closeGroup(tok.col); serr != nil {
				return nil, serr
			}
		default:
			return nil, &SyntaxError{Column: tok.col, Message: fmt.Sprintf("expected an operator but found %q", tok.text)}
		}
	}

	if expectOperand {
		return nil, &SyntaxError{Column: len(line) + 1, Message: "missing operand at end of constraint"}
	}
	for len(p.operators) > 0 {
		if top := p.operators[len(p.operators)-1]; top.text == sentinel {
			return nil, &SyntaxError{Column: top.col, Message: "unbalanced '('"}
		}
		if serr := p.reduce(); serr != nil {
			return nil, serr
		}
	}
	return p.operands[0], nil
}

// closeGroup reduces back to the matching "(" sentinel and drops it.
func (p *shunter) closeGroup(col int) *SyntaxError {
	for {
		if len(p.operators) == 0 {
			return &SyntaxError{Column: col, Message: "unbalanced ')'"}
		}
		if p.operators[len(p.operators)-1].text == sentinel {
			p.operators = p.operators[:len(p.operators)-1]
			return nil
		}
		if serr := p.reduce(); serr != nil {
			return serr
		}
	}
}

// reduce pops one operator and its two operands and pushes the combined node.
func (p *shunter) reduce() *SyntaxError {
	op := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]

	n := len(p.operands)
	if n < 2 {
		return &SyntaxError{Column: op.col, Message: fmt.Sprintf("missing operand for %q", op.text)}
	}
	left, lok := p.operands[n-2].(expr.Expr)
	right, rok := p.operands[n-1].(expr.Expr)
	p.operands = p.operands[:n-2]

	if !lok || !rok {
		if op.text == "=" {
			return &SyntaxError{Column: op.col, Message: "a constraint may contain only one '='"}
		}
		return &SyntaxError{Column: op.col, Message: fmt.Sprintf("an equation cannot be an operand of %q", op.text)}
	}

	var node expr.Statement
	switch op.text {
	case "+":
		node = expr.Addition{Left: left, Right: right}
	case "-":
		node = expr.Subtraction{Left: left, Right: right}
	case "*":
		node = expr.Multiplication{Left: left, Right: right}
	case "/":
		node = expr.Division{Left: left, Right: right}
	case "=":
		node = expr.Eq(left, right)
	}
	p.operands = append(p.operands, node)
	return nil
}
