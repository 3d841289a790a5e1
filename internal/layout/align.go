package layout

// align moves item along the cross axis according to the configured
// alignment. With AlignToLine every item on the current line is re-aligned,
// since the line may have just grown.
func (e *Engine) align(item Item) {
	if e.cfg.Alignment == AlignStart {
		return
	}

	if e.cfg.AlignScope == AlignToLine {
		extent := e.lineExtent()
		for _, it := range e.line {
			e.alignWithin(it, e.lineStart, extent)
		}
		return
	}

	p := e.cfg.Padding
	e.alignWithin(item, p, e.crossOf(e.container.Size())-2*p)
}

// alignWithin positions item on the cross axis inside [start, start+extent).
// The result is truncated toward zero and never negative.
func (e *Engine) alignWithin(item Item, start, extent int) {
	var offset int
	switch e.cfg.Alignment {
	case AlignEnd:
		offset = extent - e.crossOf(item.Size())
	case AlignCenter:
		offset = (extent - e.crossOf(item.Size())) / 2
	default:
		return
	}

	pos := item.Position()
	if e.horizontal() {
		pos.Y = max(0, start+offset)
	} else {
		pos.X = max(0, start+offset)
	}
	item.SetPosition(pos)
	e.state.grow(RectOf(item))
}
