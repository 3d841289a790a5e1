package flow

import (
	"fmt"
	"strings"
)

var (
	_ Item              = (*Box)(nil)
	_ Visibility        = (*Box)(nil)
	_ PlacementDelegate = (*Box)(nil)
)

// Dock pins a box to an edge of its container. A docked box is positioned
// by the docking system, never by the flow engine.
type Dock uint8

const (
	// DockNone leaves the box to the flow engine (default).
	DockNone Dock = iota
	// DockLeft pins the box to the left edge.
	DockLeft
	// DockRight pins the box to the right edge.
	DockRight
	// DockTop pins the box to the top edge.
	DockTop
	// DockBottom pins the box to the bottom edge.
	DockBottom
	// DockFill stretches the box over the container.
	DockFill
)

var dockNames = []string{"none", "left", "right", "top", "bottom", "fill"}

func (d Dock) String() string {
	if int(d) < len(dockNames) {
		return dockNames[d]
	}
	return fmt.Sprintf("Dock(%d)", d)
}

// ParseDock converts a name such as "left" to a Dock.
func ParseDock(s string) (Dock, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range dockNames {
		if name == s {
			return Dock(i), nil
		}
	}
	return DockNone, fmt.Errorf("%q is not a valid dock, try [%s]", s, strings.Join(dockNames, ", "))
}

func (d Dock) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Dock) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDock(string(text))
	return err
}

// Box is a plain rectangular item.
type Box struct {
	name          string
	width, height int
	left, top     int
	hidden        bool
	dock          Dock
	anchored      bool
}

// BoxOption configures a Box.
type BoxOption func(*Box)

// NewBox creates a visible, undocked box of the given size at the origin.
func NewBox(width, height int, opts ...BoxOption) *Box {
	b := &Box{width: width, height: height}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithName sets a name used in diagnostics and output.
func WithName(name string) BoxOption {
	return func(b *Box) {
		b.name = name
	}
}

// WithHidden sets whether the box starts hidden.
func WithHidden(hidden bool) BoxOption {
	return func(b *Box) {
		b.hidden = hidden
	}
}

// WithDock pins the box to a container edge.
func WithDock(d Dock) BoxOption {
	return func(b *Box) {
		b.dock = d
	}
}

// WithAnchor marks the box as positioned by anchors.
func WithAnchor() BoxOption {
	return func(b *Box) {
		b.anchored = true
	}
}

// Name returns the box's name.
func (b *Box) Name() string { return b.name }

// Size returns the box's width and height.
func (b *Box) Size() Size { return Size{Width: b.width, Height: b.height} }

// Position returns the box's top-left corner.
func (b *Box) Position() Point { return Point{X: b.left, Y: b.top} }

// SetPosition moves the box.
func (b *Box) SetPosition(p Point) {
	b.left = p.X
	b.top = p.Y
}

// Bounds returns the rectangle the box occupies.
func (b *Box) Bounds() Rect {
	return Rect{X: b.left, Y: b.top, Width: b.width, Height: b.height}
}

// Visible reports whether the box is shown.
func (b *Box) Visible() bool { return !b.hidden }

// SetVisible shows or hides the box. Call RecalculateLayout on the engine
// afterwards to close or open the gap.
func (b *Box) SetVisible(visible bool) { b.hidden = !visible }

// Dock returns the edge the box is pinned to.
func (b *Box) Dock() Dock { return b.dock }

// SetDock pins the box to an edge, or releases it with DockNone.
func (b *Box) SetDock(d Dock) { b.dock = d }

// PlacementDelegated reports whether docking or anchoring owns the position.
func (b *Box) PlacementDelegated() bool {
	return b.dock != DockNone || b.anchored
}

func (b *Box) String() string {
	name := b.name
	if name == "" {
		name = "box"
	}
	return fmt.Sprintf("%s(%dx%d@%d,%d)", name, b.width, b.height, b.left, b.top)
}
