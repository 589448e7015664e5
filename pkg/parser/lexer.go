package parser

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokName
	tokOperator
	tokOpen
	tokClose
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	col   int // 1-based
}

// SyntaxError describes a malformed constraint.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("column %d: %s", e.Column, e.Message)
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func isLetter(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

func lex(s string) ([]token, *SyntaxError) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case isLetter(c):
			start := i
			for i < len(s) && (isLetter(s[i]) || isDigit(s[i]) || s[i] == '.') {
				i++
			}
			toks = append(toks, token{kind: tokName, text: s[start:i], col: start + 1})
		case isDigit(c) || (c == '.' && i+1 < len(s) && isDigit(s[i+1])):
			start := i
			dot := false
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				if s[i] == '.' {
					if dot {
						return nil, &SyntaxError{Column: i + 1, Message: "number has more than one decimal point"}
					}
					dot = true
				}
				i++
			}
			if i < len(s) && isLetter(s[i]) {
				return nil, &SyntaxError{Column: i + 1, Message: "names cannot start with a digit"}
			}
			v, err := strconv.ParseFloat(s[start:i], 64)
			if err != nil {
				return nil, &SyntaxError{Column: start + 1, Message: fmt.Sprintf("invalid number %q", s[start:i])}
			}
			toks = append(toks, token{kind: tokNumber, text: s[start:i], value: v, col: start + 1})
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '=':
			toks = append(toks, token{kind: tokOperator, text: string(c), col: i + 1})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokOpen, text: "(", col: i + 1})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokClose, text: ")", col: i + 1})
			i++
		default:
			return nil, &SyntaxError{Column: i + 1, Message: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return toks, nil
}
