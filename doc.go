// Package tooltip attaches hover tooltips to the nodes of a retained 2D scene
// rendered with [Ebitengine].
//
// A [Controller] watches pointer events on one or more component subtrees,
// matches the hovered node against a list of [Trigger] selectors, asks the
// matching trigger for [Content], and shows it in a floating node placed next
// to the anchor (or the pointer) inside a container.
//
// # Quick start
//
//	scene := tooltip.NewScene()
//	chart := tooltip.NewContainer("chart")
//	scene.Root().AddChild(chart)
//
//	bar := tooltip.NewRect("bar-1", 20, 80, tooltip.Color{R: 0.3, G: 0.5, B: 0.9, A: 1})
//	bar.AddClass("bar")
//	bar.UserData = 42
//	chart.AddChild(bar)
//
//	cfg := tooltip.DefaultConfig()
//	cfg.Components = []tooltip.Anchor{chart}
//	cfg.Triggers = []tooltip.Trigger{{
//		Selector: ".bar",
//		Content: func(d any, _ int, _ []tooltip.Anchor) (tooltip.Content, error) {
//			return tooltip.Textf("value: %v", d), nil
//		},
//	}}
//	ctrl, err := tooltip.NewController(scene, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl.Attach()
//	defer ctrl.Dispose()
//
//	tooltip.Run(scene, tooltip.RunConfig{Title: "chart", Width: 640, Height: 480})
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root] and inherit their parent's translation and scale. A node's
// [Node.UserData] is the datum handed to content producers.
//
// # Selectors
//
// Trigger selectors match a node by class (".bar"), by name ("#title"), or
// by a glob pattern over the name ("bar-*"). When several triggers match, the
// one bound to the closest ancestor wins, then declaration order.
//
// # Placement
//
// [Place] computes the tooltip origin from an anchor rectangle, the requested
// sides and shifts, and the container bounds. A side that does not fit flips
// once to the opposite side, and the result is clamped into the container.
//
// # Timing
//
// Show and hide delays run on [DelayScheduler], which advances with the
// scene's frame clock. Delays are driven by [gween] tweens so scripted runs
// replay deterministically.
//
// # Testing
//
// [LoadTestScript] replays pointer moves and screenshots frame by frame. The
// tooltipview command uses it to record placement scenarios.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tooltip
