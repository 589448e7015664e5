package layout

import (
	"slices"
	"strings"

	"github.com/matzehuels/spanlayout/pkg/expr"
)

// Spans is the constraint system generated for one axis.
type Spans struct {
	System expr.System
	// Growth lists the growth unknowns of each span that has expanding
	// items, in span order.
	Growth [][]string
}

// BuildSpanSystem generates the constraints of every span along axis.
//
// Cross-axis positions are scanned from 0 up to crossExtent. At each
// position the items covering it form a span, ordered by their start along
// axis. The scan then moves to one past the nearest span boundary: the
// closest item end in the span, or the next item start if that comes
// first. A span already seen at an earlier position is not repeated.
//
// containerSize is the container size the expanding items' stored sizes
// were measured against.
func BuildSpanSystem(items []Item, axis Axis, containerSize, crossExtent int) Spans {
	var out Spans
	var eqs []expr.Equation
	seen := make(map[string]bool)

	for pos := 0; pos < crossExtent; {
		next := crossExtent
		var span []Item
		for _, it := range items {
			cs, ce := axis.crossStart(it), axis.crossEnd(it)
			switch {
			case cs <= pos && pos <= ce:
				span = append(span, it)
				next = min(next, ce+1)
			case cs > pos:
				next = min(next, cs)
			}
		}
		pos = next

		if len(span) == 0 {
			continue
		}
		slices.SortStableFunc(span, func(a, b Item) int { return axis.start(a) - axis.start(b) })
		key := spanKey(span)
		if seen[key] {
			continue
		}
		seen[key] = true

		spanEqs, growth := spanConstraints(span, axis, containerSize)
		eqs = append(eqs, spanEqs...)
		if len(growth) > 0 {
			out.Growth = append(out.Growth, growth)
		}
	}

	out.System = expr.NewSystem(eqs...)
	return out
}

func spanKey(span []Item) string {
	names := make([]string, len(span))
	for i, it := range span {
		names[i] = it.Name
	}
	return strings.Join(names, "\x00")
}

// spanConstraints chains the items of one span edge to edge and fills the
// container.
func spanConstraints(span []Item, axis Axis, containerSize int) ([]expr.Equation, []string) {
	container := expr.Var(axis.sizeProp())
	var (
		eqs    []expr.Equation
		sizes  []expr.Expr
		growth []string
	)

	for i, it := range span {
		start := expr.Var(Var(it.Name, axis.startProp()))
		size := expr.Var(Var(it.Name, axis.sizeProp()))

		if i == 0 {
			if axis.start(it) == 0 {
				eqs = append(eqs, expr.Eq(start, 0))
			}
		} else {
			prev := span[i-1]
			prevStart := expr.Var(Var(prev.Name, axis.startProp()))
			prevSize := expr.Var(Var(prev.Name, axis.sizeProp()))
			eqs = append(eqs, expr.Eq(start, expr.Add(prevStart, prevSize)))
		}

		switch axis.policy(it) {
		case Expanding:
			g := GrowthVar(it.Name, axis)
			growth = append(growth, g)
			delta := expr.Sub(container, containerSize)
			eqs = append(eqs, expr.Eq(size, expr.Add(axis.size(it), expr.Mul(expr.Var(g), delta))))
		default:
			eqs = append(eqs, expr.Eq(size, axis.size(it)))
		}
		sizes = append(sizes, size)
	}

	eqs = append(eqs, expr.Eq(expr.Sum(sizes...), container))
	if len(growth) > 0 {
		vars := make([]expr.Expr, len(growth))
		for i, g := range growth {
			vars[i] = expr.Var(g)
		}
		eqs = append(eqs, expr.Eq(expr.Sum(vars...), 1))
	}
	return eqs, growth
}
