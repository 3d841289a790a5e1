// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flow

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flow/internal/layout"
)

// Engine places items in a container using a single-pass greedy flow layout.
type Engine = layout.Engine

// Option configures an Engine.
type Option = layout.Option

// Config holds the engine's layout properties.
type Config = layout.Config

// State is the engine's cursor and accumulator state.
type State = layout.State

// Distribution specifies the primary axis items flow along.
type Distribution = layout.Distribution

const (
	LeftToRight = layout.LeftToRight
	TopToBottom = layout.TopToBottom
)

// Alignment specifies how items are positioned on the cross axis.
type Alignment = layout.Alignment

const (
	AlignStart  = layout.AlignStart
	AlignEnd    = layout.AlignEnd
	AlignCenter = layout.AlignCenter
)

// AlignScope selects what End and Center alignment are measured against.
type AlignScope = layout.AlignScope

const (
	AlignToContainer = layout.AlignToContainer
	AlignToLine      = layout.AlignToLine
)

// AutoSizePolicy selects when an auto-sizing container is resized.
type AutoSizePolicy = layout.AutoSizePolicy

const (
	AutoSizePerItem  = layout.AutoSizePerItem
	AutoSizePerBatch = layout.AutoSizePerBatch
)

// LayoutType names the placement algorithm.
type LayoutType = layout.LayoutType

const (
	FlowLayout  = layout.FlowLayout
	GridLayout  = layout.GridLayout
	StackLayout = layout.StackLayout
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Item is the interface anything the engine positions must implement.
type Item = layout.Item

// Visibility is implemented by items that can be hidden.
type Visibility = layout.Visibility

// PlacementDelegate is implemented by items another placement system may own.
type PlacementDelegate = layout.PlacementDelegate

// Container is the area items are laid out in.
type Container = layout.Container

// AutoSizer is implemented by containers that grow to fit their items.
type AutoSizer = layout.AutoSizer

// SizeConstraints is implemented by containers with minimum or maximum sizes.
type SizeConstraints = layout.SizeConstraints

// Measurer is implemented by containers that can force a measurement pass.
type Measurer = layout.Measurer

// Unmeasured is the largest dimension of a container that has not been laid out.
const Unmeasured = layout.Unmeasured

// NewEngine creates an engine for container.
func NewEngine(container Container, opts ...Option) *Engine {
	return layout.NewEngine(container, opts...)
}

// WithConfig sets the engine's initial configuration.
func WithConfig(cfg Config) Option {
	return layout.WithConfig(cfg)
}

// WithLogger sets the logger used for diagnostics. Without it the engine
// logs to the FLOW_DEBUG file, if set.
func WithLogger(log *zap.Logger) Option {
	return layout.WithLogger(log)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return layout.DefaultConfig()
}

// WrapAfter returns a Config.WrapCount value wrapping after n items.
func WrapAfter(n int) *int {
	return layout.WrapAfter(n)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
