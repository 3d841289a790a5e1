package layout

import (
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flow/internal/debug"
)

// Engine places items in a container using a single-pass greedy flow layout.
//
// The engine keeps an ordered roster of every item it was given so that
// Relayout can replay the same sequence from scratch. An Engine is not safe
// for concurrent use.
type Engine struct {
	container Container
	cfg       Config
	state     State
	roster    []Item
	log       *zap.Logger

	// Current line, used by AlignToLine to re-align earlier items.
	line      []Item
	lineStart int // Cross-axis coordinate where the current line begins

	// Set while Place, PlaceAll or Relayout is running. Container resize
	// callbacks that call back into the engine are detected with it.
	busy bool
}

// NewEngine creates an engine for container. container must not be nil.
func NewEngine(container Container, opts ...Option) *Engine {
	e := &Engine{
		container: container,
		cfg:       DefaultConfig(),
		log:       debug.Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cfg.diagnose(e.log)
	e.reset()
	return e
}

// Container returns the container the engine lays out.
func (e *Engine) Container() Container {
	return e.container
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return e.cfg.clone()
}

// SetConfig replaces the configuration. Items already placed keep their
// positions until the next Relayout or RecalculateLayout.
func (e *Engine) SetConfig(cfg Config) {
	cfg.diagnose(e.log)
	e.cfg = cfg.clone()
}

// State returns a snapshot of the cursor and accumulators.
func (e *Engine) State() State {
	return e.state
}

// Bounds returns the bounding box of every item placed since the last Reset.
func (e *Engine) Bounds() Rect {
	return Rect{Width: e.state.MaxWidth, Height: e.state.MaxHeight}
}

// Items returns the roster in placement order.
func (e *Engine) Items() []Item {
	return slices.Clone(e.roster)
}

// Reset re-initializes the cursor and accumulators. The roster is kept.
// Call it when the container is resized, before placing items again.
func (e *Engine) Reset() {
	if e.busy {
		e.log.Warn("Reset called during layout, ignoring")
		return
	}
	e.reset()
}

func (e *Engine) reset() {
	if size := e.container.Size(); size.IsUnmeasured() {
		if m, ok := e.container.(Measurer); ok {
			m.Measure()
			e.log.Debug("Container was unmeasured, forced measurement",
				zap.Int("width", size.Width), zap.Int("height", size.Height),
				zap.Any("measured", e.container.Size()))
		}
	}
	e.state = newState(e.cfg.Padding)
	e.line = e.line[:0]
	e.lineStart = e.cfg.Padding
}

// Place records item in the roster and, unless it is hidden or delegated to
// another placement system, positions it after the previously placed items.
func (e *Engine) Place(item Item) {
	if item == nil {
		e.log.Warn("Ignoring nil item")
		return
	}
	if e.busy {
		// Keep it for the next Relayout, but the cursor belongs to the
		// outer call.
		e.roster = append(e.roster, item)
		e.log.Warn("Place called during layout, item recorded but not positioned")
		return
	}
	e.busy = true
	defer func() { e.busy = false }()

	if e.add(item) {
		e.applyAutoSize()
	}
}

// PlaceAll places items in order. With AutoSizePerBatch the container is
// resized once at the end instead of after every item.
func (e *Engine) PlaceAll(items ...Item) {
	if e.busy {
		for _, item := range items {
			if item != nil {
				e.roster = append(e.roster, item)
			}
		}
		e.log.Warn("PlaceAll called during layout, items recorded but not positioned", zap.Int("count", len(items)))
		return
	}
	e.busy = true
	defer func() { e.busy = false }()

	e.placeAll(items)
}

// Relayout re-derives every position from scratch. A non-nil items replaces
// the roster; nil replays the current roster.
func (e *Engine) Relayout(items []Item) {
	if e.busy {
		e.log.Warn("Relayout called during layout, ignoring")
		return
	}
	e.busy = true
	defer func() { e.busy = false }()

	if items == nil {
		items = e.roster
	}
	snapshot := slices.Clone(items)
	e.roster = make([]Item, 0, len(snapshot))
	e.reset()
	e.placeAll(snapshot)
}

// RecalculateLayout replays the current roster. Call it after the container
// is resized.
func (e *Engine) RecalculateLayout() {
	e.Relayout(nil)
}

// Remove drops item from the roster and lays out the remaining items again.
// Items are compared by identity. Returns true if the item was found.
func (e *Engine) Remove(item Item) bool {
	i := slices.Index(e.roster, item)
	if i < 0 {
		return false
	}
	e.Relayout(slices.Delete(slices.Clone(e.roster), i, i+1))
	return true
}

// Clear empties the roster and resets the engine.
func (e *Engine) Clear() {
	if e.busy {
		e.log.Warn("Clear called during layout, ignoring")
		return
	}
	e.roster = nil
	e.reset()
}

func (e *Engine) placeAll(items []Item) {
	placed := false
	for _, item := range items {
		if item == nil {
			e.log.Warn("Ignoring nil item")
			continue
		}
		if !e.add(item) {
			continue
		}
		placed = true
		if e.cfg.AutoSizePolicy != AutoSizePerBatch {
			e.applyAutoSize()
		}
	}
	if placed && e.cfg.AutoSizePolicy == AutoSizePerBatch {
		e.applyAutoSize()
	}
}

// add records item and positions it. Returns false if the item was skipped.
func (e *Engine) add(item Item) bool {
	e.roster = append(e.roster, item)
	if skipped(item) {
		return false
	}

	size := item.Size()
	if e.shouldWrap(size) {
		e.wrap()
	}
	e.position(item, size)
	return true
}

// position puts item at the cursor and advances the cursor past it.
func (e *Engine) position(item Item, size Size) {
	s := &e.state
	pos := Point{X: s.CurrentX, Y: s.CurrentY}
	item.SetPosition(pos)
	s.grow(Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height})

	if e.horizontal() {
		s.CurrentX += size.Width + e.cfg.Margin
		s.RowHeight = max(s.RowHeight, size.Height)
	} else {
		s.CurrentY += size.Height + e.cfg.Margin
		s.ColWidth = max(s.ColWidth, size.Width)
	}

	e.line = append(e.line, item)
	e.align(item)
	s.LineItemCount++
}
