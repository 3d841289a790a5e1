// Package flow provides a streaming flow-layout engine for rectangular items.
//
// Users import this single package for the public API: the [Engine], its
// configuration, the capability interfaces items and containers implement,
// and the reference [Box] and [Panel] types.
//
// Items are placed in submission order. Each item goes at the cursor; when
// the next item would not fit (or a fixed count per line is reached) the
// engine wraps to a new row or column:
//
//	panel := flow.NewPanel(220, 200)
//	engine := flow.NewEngine(panel, flow.WithConfig(flow.Config{Margin: 5, Padding: 10}))
//	for range 5 {
//		engine.Place(flow.NewBox(80, 30))
//	}
//
// Hidden boxes and boxes docked to an edge are remembered but never moved.
// After the panel is resized, call [Engine.RecalculateLayout] to replay
// every item from scratch.
package flow
