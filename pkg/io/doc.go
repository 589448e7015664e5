// Package io reads and writes layout documents.
//
// # Format
//
// A layout document lists items and optional extra constraints. In JSON:
//
//	{
//	  "layout": [
//	    {"name": "A", "top": 0, "left": 0,   "width": 100,             "height": 200},
//	    {"name": "B", "top": 0, "left": 100, "width": "800 expanding", "height": 200},
//	    {"top": 0, "left": 900, "width": 100, "height": 200}
//	  ],
//	  "constraints": ["A.width = 2 * B.width"]
//	}
//
// and the same document in TOML:
//
//	constraints = ["A.width = 2 * B.width"]
//
//	[[layout]]
//	name = "A"
//	top = 0
//	left = 0
//	width = 100
//	height = 200
//
// YAML documents use the same keys, with sizes written as "100" or
// "800 expanding".
//
// A size is either a bare integer, which is a fixed size, or a string
// "<integer> expanding". Items without a name are called "@unnamed_0",
// "@unnamed_1" and so on in document order. Constraints use the syntax of
// package parser.
//
// # Reading
//
// [Load] picks the format from the file extension (".toml" for TOML, ".yaml"
// or ".yml" for YAML, JSON otherwise). [ReadJSON], [ReadTOML] and [ReadYAML]
// read from any io.Reader. The document is turned into a layout with
// [Document.Build].
//
// # Writing
//
// [FromLayout] captures the current geometry of a layout, so a solved
// layout can be saved with [Write] in any of the three formats and loaded again.
package io
