package io

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/spanlayout/pkg/errors"
	"github.com/matzehuels/spanlayout/pkg/expr"
	"github.com/matzehuels/spanlayout/pkg/layout"
	"github.com/matzehuels/spanlayout/pkg/parser"
)

// Document is the serialized form of a layout.
type Document struct {
	Layout      []ItemSpec `json:"layout" toml:"layout" yaml:"layout"`
	Constraints []string   `json:"constraints,omitempty" toml:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// ItemSpec describes one item of a document.
type ItemSpec struct {
	Name   string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Top    int    `json:"top" toml:"top" yaml:"top"`
	Left   int    `json:"left" toml:"left" yaml:"left"`
	Width  Size   `json:"width" toml:"width" yaml:"width"`
	Height Size   `json:"height" toml:"height" yaml:"height"`
}

// Size is an extent with its policy.
type Size struct {
	Value  int
	Policy layout.Policy
}

// ParseSize reads "100" or "100 expanding".
func ParseSize(s string) (Size, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Size{}, fmt.Errorf("invalid size %q", s)
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q", s)
	}
	size := Size{Value: v}
	if len(fields) == 2 {
		if size.Policy, err = layout.ParsePolicy(fields[1]); err != nil {
			return Size{}, err
		}
	}
	return size, nil
}

func (s Size) String() string {
	if s.Policy == layout.Expanding {
		return strconv.Itoa(s.Value) + " " + s.Policy.String()
	}
	return strconv.Itoa(s.Value)
}

func (s Size) MarshalJSON() ([]byte, error) {
	if s.Policy == layout.Fixed {
		return json.Marshal(s.Value)
	}
	return json.Marshal(s.String())
}

func (s *Size) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Size{Value: n}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("size must be an integer or a string, got %s", data)
	}
	v, err := ParseSize(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Size) MarshalTOML() ([]byte, error) {
	if s.Policy == layout.Fixed {
		return []byte(strconv.Itoa(s.Value)), nil
	}
	return []byte(strconv.Quote(s.String())), nil
}

func (s *Size) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*s = Size{Value: int(v)}
		return nil
	case string:
		size, err := ParseSize(v)
		if err != nil {
			return err
		}
		*s = size
		return nil
	}
	return fmt.Errorf("size must be an integer or a string, got %T", data)
}

func (s Size) MarshalYAML() (any, error) {
	if s.Policy == layout.Fixed {
		return s.Value, nil
	}
	return s.String(), nil
}

func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: size must be an integer or a string", node.Line)
	}
	size, err := ParseSize(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = size
	return nil
}

// Items converts the document items, naming unnamed ones.
func (d *Document) Items() []layout.Item {
	items := make([]layout.Item, len(d.Layout))
	unnamed := 0
	for i, spec := range d.Layout {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("@unnamed_%d", unnamed)
			unnamed++
		}
		items[i] = layout.Item{
			Name:         name,
			Top:          spec.Top,
			Left:         spec.Left,
			Width:        spec.Width.Value,
			Height:       spec.Height.Value,
			WidthPolicy:  spec.Width.Policy,
			HeightPolicy: spec.Height.Policy,
		}
	}
	return items
}

// System parses the document's extra constraints.
func (d *Document) System() (expr.System, error) {
	return parser.Parse(strings.Join(d.Constraints, "\n"))
}

// Build creates a layout from the document.
func (d *Document) Build(opts ...layout.Option) (*layout.Layout, error) {
	if len(d.Layout) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout has no items")
	}
	system, err := d.System()
	if err != nil {
		return nil, err
	}
	opts = append([]layout.Option{layout.WithConstraints(system.Constraints()...)}, opts...)
	return layout.New(d.Items(), opts...)
}

// FromLayout captures the current geometry and extra constraints of l.
// Generated names are kept so the document round-trips.
func FromLayout(l *layout.Layout) *Document {
	var constraints []string
	for _, eq := range l.Constraints() {
		constraints = append(constraints, eq.String())
	}
	return FromItems(l.Items(), constraints)
}

// FromItems builds a document from item geometry and constraint lines.
func FromItems(items []layout.Item, constraints []string) *Document {
	doc := &Document{Constraints: constraints}
	for _, it := range items {
		doc.Layout = append(doc.Layout, ItemSpec{
			Name:   it.Name,
			Top:    it.Top,
			Left:   it.Left,
			Width:  Size{Value: it.Width, Policy: it.WidthPolicy},
			Height: Size{Value: it.Height, Policy: it.HeightPolicy},
		})
	}
	return doc
}
