package layout

import (
	"fmt"
	"strings"
)

// Policy decides how an item's size reacts to a container resize.
type Policy int

const (
	// Fixed items keep their stored size.
	Fixed Policy = iota
	// Expanding items absorb part of the container's size change.
	Expanding
)

func (p Policy) String() string {
	if p == Expanding {
		return "expanding"
	}
	return "fixed"
}

// ParsePolicy reads "fixed" or "expanding". The empty string is fixed.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return Fixed, nil
	case "expanding":
		return Expanding, nil
	}
	return Fixed, fmt.Errorf("unknown size policy %q", s)
}

func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Item is a rectangle in the layout grid.
type Item struct {
	Name         string `json:"name"`
	Top          int    `json:"top"`
	Left         int    `json:"left"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	WidthPolicy  Policy `json:"width_policy"`
	HeightPolicy Policy `json:"height_policy"`
}

// Bottom is the last row the item covers.
func (it Item) Bottom() int { return it.Top + it.Height - 1 }

// Right is the last column the item covers.
func (it Item) Right() int { return it.Left + it.Width - 1 }

func (it Item) String() string {
	return fmt.Sprintf("%s(top=%d left=%d width=%d height=%d)", it.Name, it.Top, it.Left, it.Width, it.Height)
}

// Axis selects the dimension a span system is generated for.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// start, end and size of it along the axis, its extent across the axis,
// and the size policy along the axis.
func (a Axis) start(it Item) int {
	if a == Vertical {
		return it.Top
	}
	return it.Left
}

func (a Axis) size(it Item) int {
	if a == Vertical {
		return it.Height
	}
	return it.Width
}

func (a Axis) policy(it Item) Policy {
	if a == Vertical {
		return it.HeightPolicy
	}
	return it.WidthPolicy
}

func (a Axis) crossStart(it Item) int {
	if a == Vertical {
		return it.Left
	}
	return it.Top
}

func (a Axis) crossEnd(it Item) int {
	if a == Vertical {
		return it.Right()
	}
	return it.Bottom()
}

// startProp and sizeProp name the item properties along the axis. The size
// property doubles as the container variable.
func (a Axis) startProp() string {
	if a == Vertical {
		return "top"
	}
	return "left"
}

func (a Axis) sizeProp() string {
	if a == Vertical {
		return "height"
	}
	return "width"
}

// Var returns the variable name of an item property, such as "A.width".
func Var(item, prop string) string { return item + "." + prop }

// GrowthVar returns the growth unknown of an expanding item along axis.
func GrowthVar(item string, axis Axis) string {
	return Var(item, axis.sizeProp()+growthSuffix)
}

const growthSuffix = "_growth"
