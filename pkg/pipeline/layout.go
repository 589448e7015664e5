package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/spanlayout/pkg/cache"
	pkgio "github.com/matzehuels/spanlayout/pkg/io"
	"github.com/matzehuels/spanlayout/pkg/layout"
	"github.com/matzehuels/spanlayout/pkg/render"
)

// ResolveLayout builds the layout described by doc and resizes it to
// width x height. A zero extent keeps the intrinsic size on that axis.
func ResolveLayout(doc *pkgio.Document, width, height int, logger *log.Logger) (*LayoutResult, error) {
	l, err := doc.Build(layout.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if width == 0 {
		width = l.Width()
	}
	if height == 0 {
		height = l.Height()
	}
	sol := l.Resize(width, height)
	return &LayoutResult{
		Width:    width,
		Height:   height,
		Scene:    render.SceneOf(l),
		Solution: sol,
	}, nil
}

// DocumentHash is the cache identity of a layout document.
func DocumentHash(doc *pkgio.Document) (string, error) {
	return cache.HashJSON(doc)
}
