package scenario

import (
	"fmt"

	"go.uber.org/zap"

	flow "github.com/grindlemire/go-flow"
)

// Placement is where one item ended up after a layout pass.
type Placement struct {
	Name   string `yaml:"name" json:"name"`
	X      int    `yaml:"x" json:"x"`
	Y      int    `yaml:"y" json:"y"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	// False for hidden, docked and anchored items.
	Placed bool `yaml:"placed" json:"placed"`
}

// Frame is the result of one layout pass.
type Frame struct {
	Container Extent      `yaml:"container" json:"container"`
	Bounds    Extent      `yaml:"bounds" json:"bounds"`
	Items     []Placement `yaml:"items" json:"items"`
}

// Build creates the panel and boxes the scenario describes. Items with a
// repeat count expand into that many boxes named name-1, name-2 and so on.
func (s *Scenario) Build() (*flow.Panel, []*flow.Box) {
	c := s.Container
	opts := []flow.PanelOption{flow.WithAutoSize(c.AutoSize)}
	if c.MinSize != nil {
		opts = append(opts, flow.WithMinimumSize(c.MinSize.Width, c.MinSize.Height))
	}
	if c.MaxSize != nil {
		opts = append(opts, flow.WithMaximumSize(c.MaxSize.Width, c.MaxSize.Height))
	}
	if c.Measured != nil {
		measured := c.Measured.size()
		opts = append(opts, flow.WithMeasure(func() flow.Size { return measured }))
	}
	panel := flow.NewPanel(c.Width, c.Height, opts...)

	var boxes []*flow.Box
	for i, item := range s.Items {
		n := max(item.Repeat, 1)
		for k := range n {
			name := item.label(i)
			if n > 1 {
				name = fmt.Sprintf("%s-%d", name, k+1)
			}
			bopts := []flow.BoxOption{
				flow.WithName(name),
				flow.WithHidden(item.Hidden),
				flow.WithDock(item.Dock),
			}
			if item.Anchor {
				bopts = append(bopts, flow.WithAnchor())
			}
			boxes = append(boxes, flow.NewBox(item.Width, item.Height, bopts...))
		}
	}
	return panel, boxes
}

// Run lays out the scenario and returns the initial frame followed by one
// frame per resize.
func (s *Scenario) Run(log *zap.Logger) []Frame {
	if log == nil {
		log = zap.NewNop()
	}
	panel, boxes := s.Build()
	engine := flow.NewEngine(panel, flow.WithConfig(s.Config()), flow.WithLogger(log))

	items := make([]flow.Item, len(boxes))
	for i, b := range boxes {
		items[i] = b
	}
	engine.PlaceAll(items...)

	frames := make([]Frame, 0, len(s.Resizes)+1)
	frames = append(frames, capture(engine, boxes))
	for _, r := range s.Resizes {
		log.Debug("Resizing container", zap.Int("width", r.Width), zap.Int("height", r.Height))
		panel.SetSize(r.size())
		engine.RecalculateLayout()
		frames = append(frames, capture(engine, boxes))
	}
	return frames
}

func capture(engine *flow.Engine, boxes []*flow.Box) Frame {
	b := engine.Bounds()
	f := Frame{
		Container: extentOf(engine.Container().Size()),
		Bounds:    Extent{Width: b.Width, Height: b.Height},
		Items:     make([]Placement, len(boxes)),
	}
	for i, box := range boxes {
		r := box.Bounds()
		f.Items[i] = Placement{
			Name:   box.Name(),
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
			Placed: box.Visible() && !box.PlacementDelegated(),
		}
	}
	return f
}
