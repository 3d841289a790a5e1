package layout

import "go.uber.org/zap"

// autoSize returns the size an auto-sizing container should take to fit the
// bounding box, clamped to the container's constraints if it has any.
func (e *Engine) autoSize() Size {
	p := e.cfg.Padding
	size := Size{Width: e.state.MaxWidth + p, Height: e.state.MaxHeight + p}

	c, ok := e.container.(SizeConstraints)
	if !ok {
		return size
	}
	if maxSize, ok := c.MaximumSize(); ok {
		size = size.AtMost(maxSize)
	}
	if minSize, ok := c.MinimumSize(); ok {
		size = size.AtLeast(minSize)
	}
	return size
}

// applyAutoSize writes the fitted size back to the container when it has
// auto-size enabled.
func (e *Engine) applyAutoSize() {
	as, ok := e.container.(AutoSizer)
	if !ok || !as.AutoSize() {
		return
	}
	size := e.autoSize()
	if size == e.container.Size() {
		return
	}
	if ce := e.log.Check(zap.DebugLevel, "Auto-sizing container"); ce != nil {
		ce.Write(zap.Int("width", size.Width), zap.Int("height", size.Height))
	}
	as.SetSize(size)
}
