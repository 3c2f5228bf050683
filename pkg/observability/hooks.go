// Package observability provides hooks for metrics, tracing, and logging of
// gesture handling.
//
// The gesture surface reports what it does through hook interfaces instead of
// depending on a particular backend. Hosts register implementations once at
// startup; everything defaults to no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    observability.SetAnimationHooks(&myAnimationHooks{})
//	    // ... run application
//	}
//
// The surface calls hooks as a gesture progresses:
//
//	observability.Gesture().OnGestureStart(ctx, id, top)
//	// ... drag ...
//	observability.Gesture().OnGestureEnd(ctx, id, swapped, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives gesture lifecycle events from the surface.
type GestureHooks interface {
	// OnGestureStart records a drag that began on the top card.
	OnGestureStart(ctx context.Context, id, top string)

	// OnThresholdCrossed records the one-shot crossing of the outer radius.
	OnThresholdCrossed(ctx context.Context, id string, distance float64)

	// OnGestureEnd records the commit point and whether the cards swapped.
	OnGestureEnd(ctx context.Context, id string, swapped bool, elapsed time.Duration)

	// OnEventIgnored records a pointer event absorbed because it did not fit
	// the current state (move without down, down while dragging, ...).
	OnEventIgnored(ctx context.Context, event, state string)
}

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events when the surface starts animations.
type AnimationHooks interface {
	// OnPreview records the start of a depth-swap preview.
	OnPreview(ctx context.Context, id string, duration time.Duration)

	// OnSettle records the start of the settle animation.
	OnSettle(ctx context.Context, id string, swapped bool, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(context.Context, string, string)            {}
func (NoopGestureHooks) OnThresholdCrossed(context.Context, string, float64)       {}
func (NoopGestureHooks) OnGestureEnd(context.Context, string, bool, time.Duration) {}
func (NoopGestureHooks) OnEventIgnored(context.Context, string, string)            {}

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnPreview(context.Context, string, time.Duration)      {}
func (NoopAnimationHooks) OnSettle(context.Context, string, bool, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gestureHooks   GestureHooks   = NoopGestureHooks{}
	animationHooks AnimationHooks = NoopAnimationHooks{}
	hooksMu        sync.RWMutex
)

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any surface is used.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetAnimationHooks registers custom animation hooks.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gestureHooks = NoopGestureHooks{}
	animationHooks = NoopAnimationHooks{}
}
