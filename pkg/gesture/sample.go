package gesture

import (
	"fmt"

	"github.com/matzehuels/shuffle/pkg/geom"
)

// Mapped is a tension-mapped pointer position and its distance from the
// down point. The two are only ever stored together.
type Mapped struct {
	Point    geom.Point
	Distance float64
}

// Sample records one gesture's geometry. The zero value is reset.
//
// Only [Tension] writes the mapped position while a gesture is live; every
// other component treats a Sample as read-only.
type Sample struct {
	down    Opt[geom.Point]
	current Opt[Mapped]
}

// Reset clears the sample to the unset state.
func (s *Sample) Reset() {
	*s = Sample{}
}

// RecordDown starts a gesture at p and leaves the mapped position unset.
func (s *Sample) RecordDown(p geom.Point) {
	s.down = Some(p)
	s.current = None[Mapped]()
}

// RecordCurrent sets the mapped point and distance together.
func (s *Sample) RecordCurrent(p geom.Point, distance float64) {
	s.current = Some(Mapped{Point: p, Distance: distance})
}

// clearCurrent drops the mapped position but keeps the down point.
func (s *Sample) clearCurrent() {
	s.current = None[Mapped]()
}

// Down returns the pointer-down location, if a gesture has started.
func (s Sample) Down() (geom.Point, bool) {
	return s.down.Get()
}

// Current returns the mapped point, if one has been recorded.
func (s Sample) Current() (geom.Point, bool) {
	m, ok := s.current.Get()
	return m.Point, ok
}

// Distance returns the mapped distance, if one has been recorded.
func (s Sample) Distance() (float64, bool) {
	m, ok := s.current.Get()
	return m.Distance, ok
}

// Live reports whether a mapped position is set.
func (s Sample) Live() bool {
	return s.current.OK()
}

func (s Sample) String() string {
	down, hasDown := s.Down()
	m, live := s.current.Get()
	switch {
	case !hasDown:
		return "Sample{reset}"
	case !live:
		return fmt.Sprintf("Sample{down=(%.1f,%.1f) current=none}", down.X, down.Y)
	default:
		return fmt.Sprintf("Sample{down=(%.1f,%.1f) current=(%.1f,%.1f) distance=%.2f}",
			down.X, down.Y, m.Point.X, m.Point.Y, m.Distance)
	}
}
