package parser_test

import (
	"fmt"

	"github.com/matzehuels/spanlayout/pkg/parser"
)

func ExampleParse() {
	system, err := parser.Parse(`
# widths of two items filling a container
A.width + B.width = width
A.width = 100
`)
	if err != nil {
		panic(err)
	}
	fmt.Println(system)
	// Output:
	// A.width + B.width - width = 0
	// A.width - 100 = 0
}

func ExampleParseConstraint() {
	_, err := parser.ParseConstraint("2 * (x + 1")
	fmt.Println(err)
	// Output:
	// INVALID_SYNTAX: invalid constraint: column 5: unbalanced '('
}
