package flow

import (
	"slices"
	"testing"
)

func boxPositions(boxes []*Box) []Point {
	result := make([]Point, len(boxes))
	for i, b := range boxes {
		result[i] = b.Position()
	}
	return result
}

func TestFlow_FiveBoxesInPanel(t *testing.T) {
	panel := NewPanel(220, 200)
	engine := NewEngine(panel, WithConfig(Config{Margin: 5, Padding: 10}))

	var boxes []*Box
	for range 5 {
		b := NewBox(80, 30)
		boxes = append(boxes, b)
		engine.Place(b)
	}

	want := []Point{{X: 10, Y: 10}, {X: 95, Y: 10}, {X: 10, Y: 45}, {X: 95, Y: 45}, {X: 10, Y: 80}}
	if got := boxPositions(boxes); !slices.Equal(got, want) {
		t.Errorf("positions = %v, want %v", got, want)
	}
}

func TestFlow_DockedAndHiddenBoxes(t *testing.T) {
	panel := NewPanel(100, 100)
	engine := NewEngine(panel)

	a := NewBox(30, 10)
	toolbar := NewBox(100, 20, WithDock(DockTop))
	toolbar.SetPosition(Point{X: 0, Y: 0})
	hidden := NewBox(30, 10, WithHidden(true))
	b := NewBox(30, 10)
	engine.PlaceAll(a, toolbar, hidden, b)

	if b.Position() != (Point{X: 30, Y: 0}) {
		t.Errorf("b at %v, want (30, 0)", b.Position())
	}
	if toolbar.Position() != (Point{}) {
		t.Errorf("docked toolbar was moved to %v", toolbar.Position())
	}

	hidden.SetVisible(true)
	engine.RecalculateLayout()
	if hidden.Position() != (Point{X: 30, Y: 0}) || b.Position() != (Point{X: 60, Y: 0}) {
		t.Errorf("after showing: hidden at %v, b at %v", hidden.Position(), b.Position())
	}
}

func TestFlow_AutoSizePanel(t *testing.T) {
	panel := NewPanel(0, 0,
		WithAutoSize(true),
		WithMinimumSize(50, 0),
		WithMeasure(func() Size { return Size{Width: 2, Height: 2} }),
	)
	cfg := DefaultConfig()
	cfg.Padding = 5
	cfg.Margin = 5
	cfg.Distribution = TopToBottom
	cfg.WrapCount = WrapAfter(3)
	cfg.AutoSizePolicy = AutoSizePerBatch
	engine := NewEngine(panel, WithConfig(cfg))

	var boxes []*Box
	for range 5 {
		boxes = append(boxes, NewBox(20, 10))
	}
	var items []Item
	for _, b := range boxes {
		items = append(items, b)
	}
	engine.PlaceAll(items...)

	// Two columns: x = 5 and 30, rows at y = 5, 20, 35.
	if got := boxPositions(boxes); got[3] != (Point{X: 30, Y: 5}) {
		t.Errorf("positions = %v, 4th box should start the second column", got)
	}
	// Bounds 50x45 plus padding; the 50 minimum width is already met.
	if got := panel.Size(); got != (Size{Width: 55, Height: 50}) {
		t.Errorf("panel size = %+v, want 55x50", got)
	}
}

func TestFlow_RelayoutOnUserResize(t *testing.T) {
	var engine *Engine
	panel := NewPanel(100, 100, WithResizeListener(func(Size) {
		engine.RecalculateLayout()
	}))
	engine = NewEngine(panel)

	boxes := []*Box{NewBox(40, 10), NewBox(40, 10), NewBox(40, 10)}
	engine.PlaceAll(boxes[0], boxes[1], boxes[2])
	if boxes[2].Position() != (Point{X: 0, Y: 10}) {
		t.Fatalf("third box at %v, want (0, 10)", boxes[2].Position())
	}

	panel.SetSize(Size{Width: 200, Height: 100})
	if boxes[2].Position() != (Point{X: 80, Y: 0}) {
		t.Errorf("after resize third box at %v, want (80, 0)", boxes[2].Position())
	}
}
