package gesture

import (
	"math"
	"testing"

	"github.com/matzehuels/shuffle/pkg/geom"
)

const eps = 1e-9

func newTension() Tension {
	return Tension{Inner: 100, Outer: 370, Factor: 0.8}
}

func TestMapIdentityInFreeZone(t *testing.T) {
	tn := newTension()
	vectors := []geom.Point{
		{}, geom.Pt(1, 0), geom.Pt(-60, 80), geom.Pt(0, -100), geom.Pt(70.7, 70.7),
	}
	for _, v := range vectors {
		if got := tn.Map(v); got != v {
			t.Errorf("Map(%v) = %v, want identity", v, got)
		}
	}
}

func TestMapSaturationBound(t *testing.T) {
	factors := []float64{-1, 0, 0.2, 0.5, 0.8, 0.99, 1, 2}
	raws := []float64{101, 200, 369, 370, 371, 1000, 1e9, math.Inf(1)}
	for _, f := range factors {
		tn := Tension{Inner: 100, Outer: 370, Factor: f}
		for _, r := range raws {
			if got := tn.MapDistance(r); got > tn.Outer {
				t.Errorf("factor=%v MapDistance(%v) = %v, exceeds outer", f, r, got)
			}
			if _, m := tn.mapVector(geom.Pt(r*0.6, -r*0.8)); m > tn.Outer {
				t.Errorf("factor=%v mapped magnitude for %v = %v, exceeds outer", f, r, m)
			}
		}
	}
}

func TestMapMonotonic(t *testing.T) {
	for _, f := range []float64{0, 0.3, 0.8, 1} {
		tn := Tension{Inner: 100, Outer: 370, Factor: f}
		prev := 0.0
		for raw := 0.0; raw <= 1200; raw += 0.5 {
			got := tn.MapDistance(raw)
			if got < prev {
				t.Fatalf("factor=%v MapDistance(%v) = %v < previous %v", f, raw, got, prev)
			}
			prev = got
		}
	}
}

func TestMapDistanceEdges(t *testing.T) {
	tests := []struct {
		name string
		tn   Tension
		raw  float64
		want float64
	}{
		{"negative", newTension(), -5, 0},
		{"nan", newTension(), math.NaN(), 0},
		{"at inner", newTension(), 100, 100},
		{"at outer", newTension(), 370, 370},
		{"far past outer", newTension(), 5000, 370},
		{"linear factor", Tension{Inner: 100, Outer: 300, Factor: 0}, 200, 200},
		{"full factor", Tension{Inner: 100, Outer: 300, Factor: 1}, 100.5, 300},
		{"degenerate band", Tension{Inner: 100, Outer: 100, Factor: 0.5}, 150, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tn.MapDistance(tt.raw)
			if !geom.ApproxEqual(got, tt.want, eps) {
				t.Errorf("MapDistance(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMapHigherFactorSaturatesSooner(t *testing.T) {
	low := Tension{Inner: 100, Outer: 370, Factor: 0.2}
	high := Tension{Inner: 100, Outer: 370, Factor: 0.8}
	if low.MapDistance(200) >= high.MapDistance(200) {
		t.Errorf("factor 0.2 gave %v, factor 0.8 gave %v; want higher factor further along",
			low.MapDistance(200), high.MapDistance(200))
	}
}

func TestMapKeepsDirection(t *testing.T) {
	tn := newTension()
	got := tn.Map(geom.Pt(0, -500))
	if got.X != 0 || !geom.ApproxEqual(got.Y, -370, eps) {
		t.Errorf("Map((0,-500)) = %v, want (0,-370)", got)
	}
}

func TestApply(t *testing.T) {
	tn := newTension()
	var s Sample
	s.RecordDown(geom.Pt(50, 50))

	if !tn.Apply(&s, Some(geom.Pt(50, 550))) {
		t.Fatal("Apply() = false, want true")
	}
	p, _ := s.Current()
	d, _ := s.Distance()
	if !geom.ApproxEqual(p.Y, 420, eps) || p.X != 50 {
		t.Errorf("Current() = %v, want (50,420)", p)
	}
	if !geom.ApproxEqual(d, 370, eps) {
		t.Errorf("Distance() = %v, want 370", d)
	}
}

func TestApplyDistanceNeverExceedsOuter(t *testing.T) {
	tn := newTension()
	down := geom.Pt(50, 50)
	const steps = 6284
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / steps
		for _, r := range []float64{370, 1000, 1e6} {
			var s Sample
			s.RecordDown(down)
			tn.Apply(&s, Some(down.Add(geom.Pt(r*math.Cos(angle), r*math.Sin(angle)))))
			if d, _ := s.Distance(); d > tn.Outer {
				t.Fatalf("angle=%v raw=%v: Distance() = %v, exceeds outer %v", angle, r, d, tn.Outer)
			}
		}
	}
}

func TestApplyFreeZoneRecordsRawDistance(t *testing.T) {
	tn := newTension()
	var s Sample
	s.RecordDown(geom.Pt(0, 0))
	tn.Apply(&s, Some(geom.Pt(30, 40)))

	if d, _ := s.Distance(); d != 50 {
		t.Errorf("Distance() = %v, want 50", d)
	}
}

func TestMapInfiniteDisplacement(t *testing.T) {
	tn := newTension()
	tests := []struct {
		v    geom.Point
		want geom.Point
	}{
		{geom.Pt(math.Inf(1), 0), geom.Pt(370, 0)},
		{geom.Pt(0, math.Inf(-1)), geom.Pt(0, -370)},
		{geom.Pt(math.Inf(-1), 5), geom.Pt(-370, 0)},
	}
	for _, tt := range tests {
		got := tn.Map(tt.v)
		if !geom.ApproxEqual(got.X, tt.want.X, eps) || !geom.ApproxEqual(got.Y, tt.want.Y, eps) {
			t.Errorf("Map(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	// Still monotonic at the extreme.
	if far, inf := tn.Map(geom.Pt(1e12, 0)).Len(), tn.Map(geom.Pt(math.Inf(1), 0)).Len(); inf < far {
		t.Errorf("|Map(+Inf)| = %v < |Map(1e12)| = %v", inf, far)
	}
}

func TestApplyNone(t *testing.T) {
	tn := newTension()
	var s Sample
	s.RecordDown(geom.Pt(0, 0))
	s.RecordCurrent(geom.Pt(10, 0), 10)

	if tn.Apply(&s, None[geom.Point]()) {
		t.Error("Apply(None) = true, want false")
	}
	if s.Live() {
		t.Error("Apply(None) should leave the sample without a mapped position")
	}
	if _, ok := s.Down(); !ok {
		t.Error("Apply(None) should keep the down point")
	}

	var reset Sample
	if tn.Apply(&reset, Some(geom.Pt(5, 5))) {
		t.Error("Apply without a down point = true, want false")
	}
}
