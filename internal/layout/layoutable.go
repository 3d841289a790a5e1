package layout

// Item is the interface for anything the engine can position.
// The engine only ever reads an item's size and writes its position.
type Item interface {
	// Size returns the item's width and height. The engine never changes it.
	Size() Size

	// Position returns the item's current top-left corner in container space.
	Position() Point

	// SetPosition is called by the engine to store the computed position.
	SetPosition(Point)
}

// Visibility is implemented by items that can be hidden. Items that do not
// implement it are treated as visible.
type Visibility interface {
	Visible() bool
}

// PlacementDelegate is implemented by items whose position may be owned by
// another placement system (dock, anchor). The engine records delegated items
// but never moves them.
type PlacementDelegate interface {
	PlacementDelegated() bool
}

// Container is the area items are laid out in.
type Container interface {
	// Size returns the container's current size. Either dimension at or
	// below Unmeasured means the host has not laid the container out yet.
	Size() Size
}

// AutoSizer is implemented by containers that can grow to fit their items.
type AutoSizer interface {
	AutoSize() bool
	SetSize(Size)
}

// SizeConstraints is implemented by containers with minimum or maximum sizes.
// The boolean result reports whether the constraint is set.
type SizeConstraints interface {
	MinimumSize() (Size, bool)
	MaximumSize() (Size, bool)
}

// Measurer is implemented by containers that can force the host framework to
// compute their real geometry. It is only called when the container reports
// an unmeasured size.
type Measurer interface {
	Measure()
}

// skipped reports whether the engine must record item without placing it.
func skipped(item Item) bool {
	if v, ok := item.(Visibility); ok && !v.Visible() {
		return true
	}
	if d, ok := item.(PlacementDelegate); ok && d.PlacementDelegated() {
		return true
	}
	return false
}
