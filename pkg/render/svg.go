package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"hash/fnv"
)

// DefaultPalette fills items when no palette is given.
var DefaultPalette = []string{"#f4a582", "#92c5de", "#b8e186", "#fdb863", "#c2a5cf", "#80cdc1", "#fddbc7", "#d9d9d9"}

const (
	fontHeightRatio = 0.5
	fontCharWidth   = 0.6
	fontSizeMin     = 6.0
	fontSizeMax     = 20.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels  bool
	palette []string
	stroke  string
	scale   float64
}

// WithLabels writes each item's name in its centre.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithPalette sets the fill colours. An item's colour is chosen from its
// name, so it keeps its colour across resizes.
func WithPalette(colors ...string) SVGOption {
	return func(r *svgRenderer) {
		if len(colors) > 0 {
			r.palette = colors
		}
	}
}

// WithStroke sets the outline colour.
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// WithScale multiplies the output width and height without changing the
// view box.
func WithScale(f float64) SVGOption {
	return func(r *svgRenderer) {
		if f > 0 {
			r.scale = f
		}
	}
}

// RenderSVG draws every item of s as a rectangle.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{palette: DefaultPalette, stroke: "#333333", scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, float64(s.Width)*r.scale, float64(s.Height)*r.scale)
	fmt.Fprintf(&buf, "  <rect class=\"container\" x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"white\"/>\n", s.Width, s.Height)

	for _, it := range s.Items {
		fmt.Fprintf(&buf, "  <rect id=\"item-%s\" class=\"item\" x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" stroke=\"%s\"/>\n",
			escapeXML(it.Name), it.Left, it.Top, it.Width, it.Height, r.color(it.Name), r.stroke)
	}
	if r.labels {
		for _, it := range s.Items {
			size := fontSizeFor(float64(it.Width), float64(it.Height), len(it.Name))
			fmt.Fprintf(&buf, "  <text x=\"%.1f\" y=\"%.1f\" font-family=\"sans-serif\" font-size=\"%.1f\" text-anchor=\"middle\" dominant-baseline=\"central\">%s</text>\n",
				float64(it.Left)+float64(it.Width)/2, float64(it.Top)+float64(it.Height)/2, size, escapeXML(it.Name))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) color(name string) string {
	return ColorFor(name, r.palette)
}

// ColorFor picks the palette entry of an item name. The choice depends only
// on the name, so items keep their colour across resizes and renderers.
func ColorFor(name string, palette []string) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := availWidth / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
