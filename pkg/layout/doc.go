// Package layout positions rectangular items inside a resizable container
// by generating and solving constraint systems.
//
// # Spans
//
// A span is the set of items that overlap a given row (for the horizontal
// axis) or column (for the vertical axis). Within a span items are laid out
// edge to edge: the first item starts at 0 if it did so originally, every
// following item starts where the previous one ends, and the sizes add up to
// the container size along that axis.
//
// A [Fixed] item keeps its stored size. An [Expanding] item grows with the
// container:
//
//	size = base + growth * (container - baseContainer)
//
// where growth is an unknown named "<item>.<dimension>_growth". The growth
// unknowns of a span sum to 1, so extra space is handed out in full.
//
// # Variables
//
// Item geometry uses "<item>.left", "<item>.width", "<item>.top" and
// "<item>.height". The container is "width" and "height".
//
// # Resizing
//
// [Layout.Resize] pins the container to the requested size, solves the
// span systems together with any extra constraints, and writes the results
// back onto the items. If the pinned size cannot be met, for example
// because every item has a fixed size or an expanding item would shrink
// below zero, the container keeps its current size along that axis.
// Growth unknowns that remain underdetermined are given equal shares.
package layout
