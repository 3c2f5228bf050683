package gesture

import (
	"math"

	"github.com/matzehuels/shuffle/pkg/geom"
)

// Tension maps raw drag displacement to an elastic, bounded displacement.
type Tension struct {
	// Inner is the free-drag radius. Displacements up to it are unchanged.
	Inner float64
	// Outer is the saturation radius, the largest magnitude ever produced.
	Outer float64
	// Factor in [0,1) shapes how quickly the band between Inner and Outer
	// saturates. Higher values reach Outer sooner.
	Factor float64
}

// MapDistance maps a raw radial distance to its eased distance.
func (t Tension) MapDistance(raw float64) float64 {
	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	if raw <= t.Inner {
		return raw
	}
	band := t.Outer - t.Inner
	if band <= 0 {
		return t.Outer
	}
	progress := math.Min(1, (raw-t.Inner)/band)
	d := t.Inner + band*t.ease(progress)
	return math.Min(d, t.Outer)
}

// ease is a decelerating curve on [0,1] fixing both endpoints.
func (t Tension) ease(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case t.Factor <= 0:
		return x
	case t.Factor >= 1:
		return 1
	}
	return 1 - math.Pow(1-x, 1/(1-t.Factor))
}

// Map maps a raw displacement vector, keeping its direction.
func (t Tension) Map(v geom.Point) geom.Point {
	p, _ := t.mapVector(v)
	return p
}

// mapVector returns the mapped displacement and its magnitude. The
// magnitude comes straight from MapDistance, so it never exceeds Outer even
// where rescaling the direction rounds up.
func (t Tension) mapVector(v geom.Point) (geom.Point, float64) {
	raw := v.Len()
	if raw <= t.Inner {
		return v, raw
	}
	m := t.MapDistance(raw)
	return direction(v).Scale(m), m
}

// direction returns the unit vector along v. Infinite components keep
// their sign so an unbounded drag still points somewhere.
func direction(v geom.Point) geom.Point {
	if !math.IsInf(v.Len(), 0) {
		return v.Unit()
	}
	axis := func(c float64) float64 {
		if math.IsInf(c, 0) {
			return math.Copysign(1, c)
		}
		return 0
	}
	return geom.Pt(axis(v.X), axis(v.Y)).Unit()
}

// Apply maps the raw pointer position against s's down point and records
// the result. It returns false, leaving s without a mapped position, when
// raw is absent or no gesture has started; callers then render at the down
// point.
func (t Tension) Apply(s *Sample, raw Opt[geom.Point]) bool {
	p, ok := raw.Get()
	down, started := s.Down()
	if !ok || !started {
		s.clearCurrent()
		return false
	}
	d, m := t.mapVector(p.Sub(down))
	s.RecordCurrent(down.Add(d), m)
	return true
}
