// Package render draws solved layouts.
//
// # Scenes
//
// A [Scene] is the state a renderer needs: the container size and the
// geometry of every item after [layout.Layout.Resize]. [SceneOf] captures
// it from a layout.
//
// # Output Formats
//
//   - [RenderSVG]: one rectangle per item with optional name labels
//   - [RenderJSON]: item geometry and, optionally, the solver outcome
//   - [RenderPDF] and [RenderPNG]: SVG converted with rsvg-convert
//
// The [ToPDF] and [ToPNG] conversions are shared with the [sysgraph]
// subpackage, which draws constraint systems instead of layouts.
//
//	scene := render.SceneOf(l)
//	svg := render.RenderSVG(scene, render.WithLabels())
//	png, err := render.ToPNG(svg, 2.0)
//
// PDF and PNG output require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout.Resize]: github.com/matzehuels/spanlayout/pkg/layout.Layout.Resize
// [sysgraph]: github.com/matzehuels/spanlayout/pkg/render/sysgraph
package render
