package flow

var (
	_ Container       = (*Panel)(nil)
	_ AutoSizer       = (*Panel)(nil)
	_ SizeConstraints = (*Panel)(nil)
	_ Measurer        = (*Panel)(nil)
)

// Panel is a container for flow-laid-out items.
//
// A panel created with a size at or below Unmeasured has not been laid out by
// its host yet; give it a measure function with WithMeasure so the engine can
// ask for the real size.
type Panel struct {
	size     Size
	autoSize bool
	minSize  *Size
	maxSize  *Size

	measure  func() Size
	onResize []func(Size)
}

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// NewPanel creates a panel of the given size.
func NewPanel(width, height int, opts ...PanelOption) *Panel {
	p := &Panel{size: Size{Width: width, Height: height}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithAutoSize makes the panel grow or shrink to fit its items.
func WithAutoSize(enabled bool) PanelOption {
	return func(p *Panel) {
		p.autoSize = enabled
	}
}

// WithMinimumSize sets the smallest size auto-sizing may produce.
func WithMinimumSize(width, height int) PanelOption {
	return func(p *Panel) {
		p.minSize = &Size{Width: width, Height: height}
	}
}

// WithMaximumSize sets the largest size auto-sizing may produce.
// A zero dimension leaves that dimension unbounded.
func WithMaximumSize(width, height int) PanelOption {
	return func(p *Panel) {
		p.maxSize = &Size{Width: width, Height: height}
	}
}

// WithMeasure sets the function that computes the panel's real size when it
// is still unmeasured.
func WithMeasure(fn func() Size) PanelOption {
	return func(p *Panel) {
		p.measure = fn
	}
}

// WithResizeListener registers fn to be called after every size change.
func WithResizeListener(fn func(Size)) PanelOption {
	return func(p *Panel) {
		p.onResize = append(p.onResize, fn)
	}
}

// Size returns the panel's current size.
func (p *Panel) Size() Size { return p.size }

// SetSize resizes the panel and notifies resize listeners.
// Listeners are not called when the size does not change.
func (p *Panel) SetSize(s Size) {
	if s == p.size {
		return
	}
	p.size = s
	for _, fn := range p.onResize {
		fn(s)
	}
}

// AutoSize reports whether the panel fits itself to its items.
func (p *Panel) AutoSize() bool { return p.autoSize }

// SetAutoSize turns auto-sizing on or off.
func (p *Panel) SetAutoSize(enabled bool) { p.autoSize = enabled }

// MinimumSize returns the minimum size, if one is set.
func (p *Panel) MinimumSize() (Size, bool) {
	if p.minSize == nil {
		return Size{}, false
	}
	return *p.minSize, true
}

// MaximumSize returns the maximum size, if one is set.
func (p *Panel) MaximumSize() (Size, bool) {
	if p.maxSize == nil {
		return Size{}, false
	}
	return *p.maxSize, true
}

// Measure asks the host for the panel's real size. Without a measure
// function the panel keeps its current size.
func (p *Panel) Measure() {
	if p.measure == nil {
		return
	}
	p.SetSize(p.measure())
}
