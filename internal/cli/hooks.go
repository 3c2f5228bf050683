package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shuffle/pkg/observability"
)

// =============================================================================
// Gesture Counters
// =============================================================================

// gestureCounts tallies gesture hooks for the simulate summary.
type gestureCounts struct {
	mu        sync.Mutex
	gestures  int
	crossings int
	swaps     int
	ignored   int
}

func (g *gestureCounts) OnGestureStart(context.Context, string, string) {
	g.mu.Lock()
	g.gestures++
	g.mu.Unlock()
}

func (g *gestureCounts) OnThresholdCrossed(context.Context, string, float64) {
	g.mu.Lock()
	g.crossings++
	g.mu.Unlock()
}

func (g *gestureCounts) OnGestureEnd(_ context.Context, _ string, swapped bool, _ time.Duration) {
	if !swapped {
		return
	}
	g.mu.Lock()
	g.swaps++
	g.mu.Unlock()
}

func (g *gestureCounts) OnEventIgnored(context.Context, string, string) {
	g.mu.Lock()
	g.ignored++
	g.mu.Unlock()
}

// =============================================================================
// Logging Hooks
// =============================================================================

// logHooks reports gesture outcomes at info level. The surface already logs
// the details at debug level.
type logHooks struct {
	observability.NoopGestureHooks
	observability.NoopAnimationHooks

	logger *log.Logger
}

func (h logHooks) OnGestureEnd(_ context.Context, id string, swapped bool, elapsed time.Duration) {
	if swapped {
		h.logger.Infof("Swapped cards (%s, %s)", shortID(id), elapsed.Round(time.Millisecond))
		return
	}
	h.logger.Infof("Rolled back (%s, %s)", shortID(id), elapsed.Round(time.Millisecond))
}

func (h logHooks) OnPreview(_ context.Context, id string, d time.Duration) {
	h.logger.Infof("Previewing swap (%s) over %s", shortID(id), d)
}

// shortID abbreviates a gesture id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
