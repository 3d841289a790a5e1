package layout

// State is the engine's cursor and accumulator state for one layout pass.
// It is re-initialized by Reset and never shared between engines.
type State struct {
	// Cursor: where the next item will be placed.
	CurrentX, CurrentY int

	// Line accumulators
	LineItemCount int // Items placed on the current line
	RowHeight     int // Tallest item on the current row (LeftToRight)
	ColWidth      int // Widest item on the current column (TopToBottom)

	// Bounding box of every placed item's bottom-right corner.
	// Only grows until the next Reset.
	MaxWidth, MaxHeight int
}

// newState returns the state of an engine that has not placed anything yet.
func newState(padding int) State {
	return State{CurrentX: padding, CurrentY: padding}
}

// grow extends the bounding-box accumulator to cover r.
func (s *State) grow(r Rect) {
	s.MaxWidth = max(s.MaxWidth, r.Right())
	s.MaxHeight = max(s.MaxHeight, r.Bottom())
}
