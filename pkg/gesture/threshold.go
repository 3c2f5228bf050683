package gesture

import "github.com/matzehuels/shuffle/pkg/geom"

// Watcher fires once when a gesture's distance first rises into the
// tolerance band around Outer. Lingering in the band does not re-fire.
//
// A Watcher belongs to one gesture; call Reset when a new one starts.
type Watcher struct {
	Outer      float64
	Affordance float64

	last float64
}

// Observe feeds the current frame's distance and reports whether the
// threshold was crossed on this frame.
func (w *Watcher) Observe(distance float64) bool {
	crossed := geom.ApproxEqual(distance, w.Outer, w.Affordance) &&
		w.last < w.Outer-w.Affordance
	if crossed {
		w.last = w.Outer
	} else {
		w.last = distance
	}
	return crossed
}

// Reset forgets the previous frame.
func (w *Watcher) Reset() {
	w.last = 0
}
