// Package parser reads constraint text into expression trees.
//
// # Grammar
//
// Each non-blank line holds one constraint:
//
//	constraint := expression [ "=" expression ]
//	expression := term { ("+" | "-") term }
//	term       := factor { ("*" | "/") factor }
//	factor     := number | name | "(" expression ")"
//
// Names match [A-Za-z_][A-Za-z0-9_.]* so item geometry such as "A.left" or
// "B.width_growth" reads as a single variable. Numbers have at most one
// decimal point; in operand position a "-" written directly before a number
// makes it negative ("x = -5"). Lines starting with "#" are comments.
//
// "l = r" becomes the equation l - r = 0, "l = 0" becomes l = 0, and a line
// without "=" constrains its expression to zero.
//
// # Errors
//
// Parsing stops at the first malformed line. The returned error carries the
// code [errors.ErrCodeSyntax] and wraps a [*SyntaxError] with the position.
//
// [errors.ErrCodeSyntax]: github.com/matzehuels/spanlayout/pkg/errors.ErrCodeSyntax
package parser
