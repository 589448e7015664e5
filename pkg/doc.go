// Package pkg provides the core libraries of spanlayout.
//
// # Overview
//
// spanlayout solves systems of linear equality constraints over named
// unknowns and uses that solver to lay out rectangular items inside a
// container that can be resized. The pkg directory is organized into:
//
//  1. [expr], [parser] and [algebra] - the symbolic expression tree, the
//     constraint text syntax and algebraic rewriting
//  2. [solver] - substitution-based solving with per-unknown status
//  3. [layout] - span decomposition of item grids into constraint systems
//  4. [io] and [render] - layout documents and their drawings
//  5. [pipeline] and [cache] - orchestration with result caching
//
// # Architecture
//
// The typical data flow:
//
//	Layout document (JSON, TOML or YAML)
//	         ↓
//	    [io] package (decode items and extra constraints)
//	         ↓
//	    [layout] package (spans → constraint system at the new size)
//	         ↓
//	    [solver] package (assign, or flag underdetermined/inconsistent)
//	         ↓
//	    [render] package (SVG/PDF/PNG/JSON output)
//
// Example:
//
//	import (
//	    pkgio "github.com/matzehuels/spanlayout/pkg/io"
//	    "github.com/matzehuels/spanlayout/pkg/render"
//	)
//
//	doc, _ := pkgio.Load("page.toml")
//	l, _ := doc.Build()
//	sol := l.Resize(1200, 800)
//	svg := render.RenderSVG(render.SceneOf(l), render.WithLabels())
//
// # Main Packages
//
// [expr] - Immutable expression nodes (literals, variables and the four
// arithmetic operators), equations and systems, printed back in parser
// syntax.
//
// [parser] - Reads one constraint per line, such as "A.width = 2 * B.width",
// reporting the line and column of syntax errors.
//
// [algebra] - Expansion into sums of monomials, classification (constant,
// linear, nonlinear), substitution and evaluation.
//
// [solver] - Gaussian-style elimination by substitution. Every unknown ends
// up assigned, underdetermined or inconsistent; contradictions are blamed on
// the unknowns involved.
//
// [layout] - Items with fixed or expanding widths and heights. A resize
// builds one equation per span of items crossing the container and lets the
// solver distribute the difference over expanding items.
//
// [render/sysgraph] - Draws the incidence graph of a constraint system with
// Graphviz.
//
// ## Infrastructure
//
// [pipeline] - Solve, layout and render stages shared by the CLI and the
// HTTP API.
//
// [cache] - File, Redis and no-op backends behind one interface, with
// content-hash keys.
//
// [observability] - Hooks for solves, resizes, cache traffic and HTTP
// requests.
//
// [errors] - Error codes shared by the CLI and the API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/solver/...    # Specific package
//	go test -run Example        # Examples only
//
// [expr]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/expr
// [parser]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/parser
// [algebra]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/algebra
// [solver]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/solver
// [layout]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/layout
// [io]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/render
// [render/sysgraph]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/render/sysgraph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/spanlayout/pkg/errors
package pkg
