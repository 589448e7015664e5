// Package sysgraph draws constraint systems as Graphviz diagrams.
//
// The diagram is bipartite: every equation is a box and every unknown an
// ellipse, with an edge from each equation to the unknowns it mentions.
// When a solution is given, unknowns are coloured by their outcome
// (solved, underdetermined or inconsistent), which makes it easy to see
// how a contradiction spreads through the equations that share unknowns.
//
//	dot := sysgraph.ToDOT(system, sysgraph.Options{Solution: &sol, Values: true})
//	svg, err := sysgraph.RenderSVG(dot)
//
// [RenderSVG] uses the WebAssembly build of Graphviz bundled by
// github.com/goccy/go-graphviz, so no Graphviz installation is needed.
// [RenderPDF] and [RenderPNG] additionally need rsvg-convert.
package sysgraph
