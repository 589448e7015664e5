package sysgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/spanlayout/pkg/algebra"
	"github.com/matzehuels/spanlayout/pkg/expr"
	"github.com/matzehuels/spanlayout/pkg/render"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

// Options configures diagram generation.
type Options struct {
	// Solution colours unknowns by outcome. Nil leaves them uncoloured.
	Solution *solver.Solution
	// Values appends assigned values to solved unknowns.
	Values bool
}

var statusFill = map[solver.Status]string{
	solver.Solved:          "palegreen",
	solver.Underdetermined: "khaki",
	solver.Inconsistent:    "salmon",
}

// contradictionID is the node for an inconsistency without a named cause.
const contradictionID = "contradiction"

// ToDOT converts a constraint system to Graphviz DOT.
func ToDOT(system expr.System, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	var names []string
	seen := make(map[string]bool)
	for i, eq := range system.Constraints() {
		fmt.Fprintf(&buf, "  %q [shape=box, style=rounded, label=%q];\n", eqID(i), eq.String())
		for _, n := range algebra.Variables(eq) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}

	buf.WriteString("\n")
	for _, n := range names {
		fmt.Fprintf(&buf, "  %q [%s];\n", varID(n), strings.Join(varAttrs(n, opts), ", "))
	}
	if opts.Solution != nil && opts.Solution.Inconsistencies.Has(solver.Anonymous) {
		fmt.Fprintf(&buf, "  %q [shape=octagon, style=filled, fillcolor=%s, label=\"no solution\"];\n", contradictionID, statusFill[solver.Inconsistent])
	}

	buf.WriteString("\n")
	for i, eq := range system.Constraints() {
		for _, n := range algebra.Variables(eq) {
			fmt.Fprintf(&buf, "  %q -- %q;\n", eqID(i), varID(n))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func eqID(i int) string     { return "eq" + strconv.Itoa(i) }
func varID(n string) string { return "var:" + n }

func varAttrs(name string, opts Options) []string {
	label := name
	attrs := []string{"shape=ellipse"}
	if sol := opts.Solution; sol != nil {
		status := sol.Status(name)
		if fill, ok := statusFill[status]; ok {
			attrs = append(attrs, "style=filled", "fillcolor="+fill)
		}
		if v, ok := sol.Value(name); ok && opts.Values {
			label = name + " = " + expr.FormatNumber(v)
		}
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", status.String()))
	}
	return append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg element with a plain
// one sized to the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
