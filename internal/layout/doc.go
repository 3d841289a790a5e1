// Package layout implements a pure-Go streaming flow-layout engine.
//
// Items are placed one at a time along a primary axis (left-to-right or
// top-to-bottom) and wrap onto a new line when a fixed item count is reached
// or, in automatic mode, when the next item would cross the container's
// trailing padding. Types are re-exported through the root flow package for
// public consumption.
//
// The main entry point is [Engine]. The engine works entirely with the
// capability interfaces in this package ([Item], [Container] and their
// optional extensions), so any widget type can take part in layout.
package layout
