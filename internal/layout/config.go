package layout

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Distribution specifies the primary axis items flow along.
type Distribution uint8

const (
	LeftToRight Distribution = iota // Items fill a row, wrap starts a new row
	TopToBottom                     // Items fill a column, wrap starts a new column
)

// Alignment specifies how items are positioned on the cross axis.
type Alignment uint8

const (
	AlignStart  Alignment = iota // Leave items at the cursor
	AlignEnd                     // Push items to the far edge
	AlignCenter                  // Center items
)

// AlignScope selects what End and Center alignment are measured against.
type AlignScope uint8

const (
	AlignToContainer AlignScope = iota // Each item aligns to the container's cross extent
	AlignToLine                        // Items align within their own line's extent
)

// AutoSizePolicy selects when an auto-sizing container is resized.
type AutoSizePolicy uint8

const (
	AutoSizePerItem  AutoSizePolicy = iota // After every placed item
	AutoSizePerBatch                       // Once at the end of PlaceAll or Relayout
)

// LayoutType names the placement algorithm. Only FlowLayout is implemented;
// the others fall back to flow placement.
type LayoutType uint8

const (
	FlowLayout LayoutType = iota
	GridLayout
	StackLayout
)

// Config holds the engine's layout properties.
type Config struct {
	Margin  int // Gap between consecutive items on a line, and between lines
	Padding int // Inset from every container edge

	// WrapCount fixes the number of items per line. Nil selects automatic
	// wrapping based on the container size.
	WrapCount *int

	Distribution   Distribution
	Alignment      Alignment
	AlignScope     AlignScope
	AutoSizePolicy AutoSizePolicy
	Type           LayoutType
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Distribution: LeftToRight,
		Alignment:    AlignStart,
		AlignScope:   AlignToContainer,
		Type:         FlowLayout,
	}
}

// WrapAfter returns a WrapCount value wrapping after n items.
func WrapAfter(n int) *int {
	return &n
}

// countWrap reports whether count-based wrapping is active and its limit.
// A non-positive WrapCount behaves as automatic wrapping.
func (c Config) countWrap() (int, bool) {
	if c.WrapCount == nil || *c.WrapCount <= 0 {
		return 0, false
	}
	return *c.WrapCount, true
}

// Validate reports every clearly invalid setting. The engine itself never
// rejects a configuration; Validate is for callers that want strict checks.
func (c Config) Validate() error {
	var err error
	if c.Margin < 0 {
		err = multierr.Append(err, fmt.Errorf("margin must not be negative, got %d", c.Margin))
	}
	if c.Padding < 0 {
		err = multierr.Append(err, fmt.Errorf("padding must not be negative, got %d", c.Padding))
	}
	if c.WrapCount != nil && *c.WrapCount <= 0 {
		err = multierr.Append(err, fmt.Errorf("wrap count must be positive, got %d", *c.WrapCount))
	}
	if c.Distribution > TopToBottom {
		err = multierr.Append(err, fmt.Errorf("unknown distribution %d", c.Distribution))
	}
	if c.Alignment > AlignCenter {
		err = multierr.Append(err, fmt.Errorf("unknown alignment %d", c.Alignment))
	}
	if c.AlignScope > AlignToLine {
		err = multierr.Append(err, fmt.Errorf("unknown align scope %d", c.AlignScope))
	}
	if c.AutoSizePolicy > AutoSizePerBatch {
		err = multierr.Append(err, fmt.Errorf("unknown auto-size policy %d", c.AutoSizePolicy))
	}
	if c.Type > StackLayout {
		err = multierr.Append(err, fmt.Errorf("unknown layout type %d", c.Type))
	}
	return err
}

// diagnose logs every problem Validate finds plus settings that are valid but
// not implemented. It never changes the configuration.
func (c Config) diagnose(log *zap.Logger) {
	for _, e := range multierr.Errors(c.Validate()) {
		log.Warn("Invalid layout configuration, continuing with best-effort layout", zap.Error(e))
	}
	if c.Type != FlowLayout && c.Type <= StackLayout {
		log.Warn("Layout type not implemented, using flow layout", zap.Stringer("type", c.Type))
	}
}
