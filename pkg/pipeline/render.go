package pipeline

import (
	"fmt"

	"github.com/matzehuels/spanlayout/pkg/cache"
	"github.com/matzehuels/spanlayout/pkg/render"
)

// RenderLayout draws a resolved layout in every requested format.
func RenderLayout(res *LayoutResult, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(res, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		out[format] = data
	}
	return out, nil
}

func renderFormat(res *LayoutResult, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(res.Scene, opts.svgOptions()...), nil
	case FormatPNG:
		return render.RenderPNG(res.Scene, opts.Scale, opts.svgOptions()...)
	case FormatPDF:
		return render.RenderPDF(res.Scene, opts.svgOptions()...)
	case FormatJSON:
		return render.RenderJSON(res.Scene,
			render.WithSolution(res.Solution),
			render.WithRequested(res.Width, res.Height))
	}
	return nil, ValidateFormat(format)
}

// sceneHash identifies the drawn geometry independently of how it was solved.
func sceneHash(res *LayoutResult) (string, error) {
	return cache.HashJSON(struct {
		Scene     render.Scene `json:"scene"`
		Requested [2]int       `json:"requested"`
	}{res.Scene, [2]int{res.Width, res.Height}})
}
