package algebra

import "github.com/matzehuels/spanlayout/pkg/expr"

// Variables returns the names of the variables referenced by s, each once,
// in order of first appearance.
func Variables(s expr.Statement) []string {
	seen := make(map[string]struct{})
	var names []string
	expr.Walk(s, expr.Funcs[struct{}]{Variable: func(v expr.Variable) struct{} {
		if _, ok := seen[v.Name]; !ok {
			seen[v.Name] = struct{}{}
			names = append(names, v.Name)
		}
		return struct{}{}
	}})
	return names
}

// Contains reports whether s references the variable name.
func Contains(s expr.Statement, name string) bool {
	found := false
	expr.Walk(s, expr.Funcs[struct{}]{Variable: func(v expr.Variable) struct{} {
		found = found || v.Name == name
		return struct{}{}
	}})
	return found
}
