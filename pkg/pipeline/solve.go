package pipeline

import (
	"strings"

	"github.com/matzehuels/spanlayout/pkg/cache"
	"github.com/matzehuels/spanlayout/pkg/expr"
	"github.com/matzehuels/spanlayout/pkg/parser"
)

// ParseSystem parses one constraint per entry into a system.
// Blank entries and entries starting with '#' are skipped.
func ParseSystem(constraints []string) (expr.System, error) {
	return parser.Parse(strings.Join(constraints, "\n"))
}

// SystemHash is the cache identity of a parsed system. It hashes the
// canonical rendering, so formatting differences in the source share a key.
func SystemHash(system expr.System) string {
	return cache.Hash([]byte(system.String()))
}
