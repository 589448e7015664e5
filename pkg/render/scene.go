package render

import (
	"github.com/matzehuels/spanlayout/pkg/layout"
)

// Scene is a solved layout ready to be drawn.
type Scene struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Items  []layout.Item `json:"items"`
}

// SceneOf captures the current container size and item geometry of l.
func SceneOf(l *layout.Layout) Scene {
	return Scene{Width: l.Width(), Height: l.Height(), Items: l.Items()}
}
