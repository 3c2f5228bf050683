// Package pkg provides the core libraries for shuffle, a two-card swap
// gesture.
//
// # Overview
//
// Two cards are stacked with a small offset. The user presses on the top
// card and drags it; past an inner radius the drag meets increasing tension
// and never exceeds an outer radius. Reaching the outer radius arms a swap,
// previewed by exchanging the cards' elevation, and releasing commits it:
// the dragged card settles behind the other one.
//
// # Architecture
//
// Pointer events flow through the packages in this order:
//
//	host pointer events
//	         ↓
//	    [surface] (gesture state machine)
//	         ↓
//	    [gesture] (tension mapping + threshold watcher)
//	         ↓
//	    [swap] (top card, crossed flag, settle targets)
//	         ↓
//	    [tween] (position and depth animations on host items)
//
// # Quick Start
//
// Drive a surface from any pointer source:
//
//	a, b := &surface.Handle{}, &surface.Handle{}
//	sched := tween.NewScheduler()
//	s := surface.New(ctx, a, b, sched, surface.DefaultOptions())
//	s.SetLayout(geom.RectXYWH(0, 0, 240, 160))
//
//	s.Down(geom.Pt(120, 80))
//	s.Move(geom.Pt(520, 80))
//	s.Up()
//
//	for sched.Active() > 0 {
//	    sched.Step() // once per frame
//	}
//
// # Main Packages
//
// [geom] - Points and rectangles in surface pixels.
//
// [gesture] - Gesture samples, the tension mapping and the one-shot
// threshold watcher.
//
// [swap] - The swap controller and resting layout of the two cards.
//
// [tween] - Keyed, last-writer-wins tweens driven by a frame clock.
//
// [surface] - The pointer-event state machine tying the above together,
// plus a Graphviz export of its states.
//
// [script] - TOML gesture scripts and headless replay.
//
// ## Infrastructure
//
// [config] - Layered configuration (defaults, TOML file, environment).
//
// [errors] - Coded errors for configuration and script loading.
//
// [observability] - Hooks for gesture and animation events.
//
// [buildinfo] - Version information set at build time.
package pkg
