package layout

import (
	"io"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spanlayout/pkg/errors"
	"github.com/matzehuels/spanlayout/pkg/expr"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

// Container variable names.
const (
	WidthVar  = "width"
	HeightVar = "height"
)

// Layout owns a set of items and the size of the container they fill.
// Resize mutates the layout; a Layout must not be resized concurrently.
type Layout struct {
	items       []Item
	index       map[string]int
	constraints []expr.Equation
	width       int
	height      int
	logger      *log.Logger
}

// Option configures a Layout.
type Option func(*Layout)

// WithConstraints adds equations that are solved together with the span
// systems on every resize.
func WithConstraints(eqs ...expr.Equation) Option {
	return func(l *Layout) { l.constraints = append(l.constraints, eqs...) }
}

// WithLogger sets the logger used to report pin and growth recovery.
func WithLogger(logger *log.Logger) Option {
	return func(l *Layout) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New copies items, orders them by (top, left) and sizes the container to
// their bounding box.
func New(items []Item, opts ...Option) (*Layout, error) {
	l := &Layout{
		items:  slices.Clone(items),
		index:  make(map[string]int, len(items)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, it := range l.items {
		if err := errors.ValidateItemName(it.Name); err != nil {
			return nil, err
		}
		for _, v := range []struct {
			what string
			n    int
		}{{"top", it.Top}, {"left", it.Left}, {"width", it.Width}, {"height", it.Height}} {
			if err := errors.ValidateSize(it.Name+"."+v.what, v.n); err != nil {
				return nil, err
			}
		}
		l.width = max(l.width, it.Right()+1)
		l.height = max(l.height, it.Bottom()+1)
	}

	slices.SortStableFunc(l.items, func(a, b Item) int {
		if a.Top != b.Top {
			return a.Top - b.Top
		}
		return a.Left - b.Left
	})
	for i, it := range l.items {
		if _, dup := l.index[it.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "duplicate item name: %s", it.Name)
		}
		l.index[it.Name] = i
	}
	return l, nil
}

// Items returns a copy of the items in (top, left) order.
func (l *Layout) Items() []Item { return slices.Clone(l.items) }

// Item returns the item called name.
func (l *Layout) Item(name string) (Item, bool) {
	i, ok := l.index[name]
	if !ok {
		return Item{}, false
	}
	return l.items[i], true
}

// Constraints returns the extra equations passed with [WithConstraints].
func (l *Layout) Constraints() []expr.Equation { return slices.Clone(l.constraints) }

// Width is the current container width.
func (l *Layout) Width() int { return l.width }

// Height is the current container height.
func (l *Layout) Height() int { return l.height }

// System returns the full constraint system Resize would solve for the
// given container size: the two size pins, both span systems and the
// extra constraints.
func (l *Layout) System(width, height int) expr.System {
	return expr.NewSystem(pins(width, height)...).Merge(l.body().system)
}

type body struct {
	system expr.System
	growth [][]string
}

func (l *Layout) body() body {
	h := BuildSpanSystem(l.items, Horizontal, l.width, l.height)
	v := BuildSpanSystem(l.items, Vertical, l.height, l.width)
	return body{
		system: h.System.Merge(v.System).Append(l.constraints...),
		growth: append(h.Growth, v.Growth...),
	}
}

func pins(width, height int) []expr.Equation {
	return []expr.Equation{
		expr.Eq(expr.Var(WidthVar), width),
		expr.Eq(expr.Var(HeightVar), height),
	}
}

// Resize solves the layout for a container of the given size and writes
// the solved geometry back onto the items. It returns the final solution
// so callers can inspect unknowns that stayed unsolved.
//
// A size pin the items cannot satisfy is replaced by the current container
// size along that axis, and dropped if that fails too. A pin that solves
// any item to a negative size counts as unsatisfiable. Growth unknowns of a
// span that stay underdetermined are made equal.
func (l *Layout) Resize(width, height int) solver.Solution {
	b := l.body()
	p := pins(width, height)
	active := map[string]expr.Equation{WidthVar: p[0], HeightVar: p[1]}
	fallback := map[string]int{WidthVar: l.width, HeightVar: l.height}

	solve := func() solver.Solution {
		var eqs []expr.Equation
		for _, name := range []string{WidthVar, HeightVar} {
			if eq, ok := active[name]; ok {
				eqs = append(eqs, eq)
			}
		}
		return solver.Solve(expr.NewSystem(eqs...).Merge(b.system))
	}

	settle := func(sol solver.Solution) solver.Solution {
		for {
			negative := l.negativeAxes(sol)
			relaxed := false
			for _, name := range []string{WidthVar, HeightVar} {
				if _, ok := active[name]; !ok || !(sol.Inconsistencies.Has(name) || negative[name]) {
					continue
				}
				if n, ok := fallback[name]; ok {
					l.logger.Debug("pinning container to current size", "var", name, "width", width, "height", height, "current", n)
					active[name] = expr.Eq(expr.Var(name), n)
					delete(fallback, name)
				} else {
					l.logger.Debug("dropping container pin", "var", name)
					delete(active, name)
				}
				relaxed = true
			}
			if !relaxed {
				return sol
			}
			sol = solve()
		}
	}

	sol := settle(solve())
	if shares := equalShares(b.growth, sol); len(shares) > 0 {
		l.logger.Debug("splitting growth equally", "equations", len(shares))
		b.system = b.system.Append(shares...)
		sol = settle(solve())
	}

	if sol.IsInconsistent() {
		l.logger.Warn("layout constraints are inconsistent", "vars", sol.Inconsistencies.Sorted())
	}
	l.apply(sol)
	return sol
}

// negativeAxes reports the axes along which sol gives some item a negative
// size, keyed by the container variable of that axis.
func (l *Layout) negativeAxes(sol solver.Solution) map[string]bool {
	out := make(map[string]bool)
	for name, v := range sol.Assignments {
		dot := strings.LastIndex(name, ".")
		if dot < 0 || math.Round(v) >= 0 {
			continue
		}
		if _, ok := l.index[name[:dot]]; !ok {
			continue
		}
		switch prop := name[dot+1:]; prop {
		case WidthVar, HeightVar:
			out[prop] = true
		}
	}
	return out
}

// equalShares equates the growth unknowns of every span in which any of
// them is underdetermined.
func equalShares(growth [][]string, sol solver.Solution) []expr.Equation {
	var eqs []expr.Equation
	for _, span := range growth {
		if len(span) < 2 || !slices.ContainsFunc(span, sol.Underdetermined.Has) {
			continue
		}
		for _, g := range span[1:] {
			eqs = append(eqs, expr.Eq(expr.Var(span[0]), expr.Var(g)))
		}
	}
	return eqs
}

func (l *Layout) apply(sol solver.Solution) {
	for name, v := range sol.Assignments {
		n := int(math.Round(v))
		switch name {
		case WidthVar:
			l.width = n
			continue
		case HeightVar:
			l.height = n
			continue
		}

		dot := strings.LastIndex(name, ".")
		if dot < 0 {
			continue
		}
		i, ok := l.index[name[:dot]]
		if !ok {
			continue
		}
		it := &l.items[i]
		switch name[dot+1:] {
		case "top":
			it.Top = n
		case "left":
			it.Left = n
		case "width":
			it.Width = n
		case "height":
			it.Height = n
		}
	}
}
