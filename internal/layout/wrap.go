package layout

import "go.uber.org/zap"

// horizontal reports whether the primary axis is X.
func (e *Engine) horizontal() bool {
	return e.cfg.Distribution != TopToBottom
}

// mainOf returns the extent of s along the primary axis.
func (e *Engine) mainOf(s Size) int {
	if e.horizontal() {
		return s.Width
	}
	return s.Height
}

// crossOf returns the extent of s along the cross axis.
func (e *Engine) crossOf(s Size) int {
	if e.horizontal() {
		return s.Height
	}
	return s.Width
}

// cursorMain returns the cursor position along the primary axis.
func (e *Engine) cursorMain() int {
	if e.horizontal() {
		return e.state.CurrentX
	}
	return e.state.CurrentY
}

// lineExtent returns the cross-axis size of the current line so far.
func (e *Engine) lineExtent() int {
	if e.horizontal() {
		return e.state.RowHeight
	}
	return e.state.ColWidth
}

// shouldWrap decides whether an item of the given size starts a new line.
func (e *Engine) shouldWrap(size Size) bool {
	if limit, ok := e.cfg.countWrap(); ok {
		return e.state.LineItemCount >= limit
	}

	// An item at the start of a line never wraps, so an item larger than
	// the container gets a line of its own instead of wrapping forever.
	cursor := e.cursorMain()
	if cursor == e.cfg.Padding {
		return false
	}
	extent := e.mainOf(e.container.Size()) - e.cfg.Padding
	return cursor+e.mainOf(size) > extent
}

// wrap ends the current line and moves the cursor to the start of the next.
func (e *Engine) wrap() {
	s := &e.state
	if e.horizontal() {
		s.CurrentX = e.cfg.Padding
		s.CurrentY += s.RowHeight + e.cfg.Margin
		s.RowHeight = 0
		e.lineStart = s.CurrentY
	} else {
		s.CurrentY = e.cfg.Padding
		s.CurrentX += s.ColWidth + e.cfg.Margin
		s.ColWidth = 0
		e.lineStart = s.CurrentX
	}
	if ce := e.log.Check(zap.DebugLevel, "Wrapped to new line"); ce != nil {
		ce.Write(zap.Int("items", s.LineItemCount), zap.Int("x", s.CurrentX), zap.Int("y", s.CurrentY))
	}
	s.LineItemCount = 0
	e.line = e.line[:0]
}
