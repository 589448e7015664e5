package render

import (
	"encoding/json"

	"github.com/matzehuels/spanlayout/pkg/solver"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	solution  *solver.Solution
	requested *size
}

type size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WithSolution includes the solver outcome, so consumers can tell which
// unknowns were left unsolved.
func WithSolution(sol solver.Solution) JSONOption {
	return func(r *jsonRenderer) { r.solution = &sol }
}

// WithRequested records the container size that was asked for. It differs
// from the scene size when a size pin had to be dropped.
func WithRequested(width, height int) JSONOption {
	return func(r *jsonRenderer) { r.requested = &size{Width: width, Height: height} }
}

type jsonOutput struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Requested *size            `json:"requested,omitempty"`
	Items     []jsonItem       `json:"items"`
	Solution  *solver.Solution `json:"solution,omitempty"`
}

type jsonItem struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// RenderJSON exports the solved geometry of s as pretty-printed JSON.
func RenderJSON(s Scene, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:     s.Width,
		Height:    s.Height,
		Requested: r.requested,
		Items:     make([]jsonItem, len(s.Items)),
		Solution:  r.solution,
	}
	for i, it := range s.Items {
		out.Items[i] = jsonItem{Name: it.Name, X: it.Left, Y: it.Top, Width: it.Width, Height: it.Height}
	}
	return json.MarshalIndent(out, "", "  ")
}
