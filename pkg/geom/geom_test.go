package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Len(); got != 5 {
		t.Errorf("Len() = %v, want 5", got)
	}
	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add() = %v, want (4,5)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub() = %v, want (2,3)", got)
	}
	if got := p.Scale(2); got != Pt(6, 8) {
		t.Errorf("Scale() = %v, want (6,8)", got)
	}
	if got := Dist(Pt(0, 0), p); got != 5 {
		t.Errorf("Dist() = %v, want 5", got)
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"zero vector", Point{}, Point{}},
		{"axis", Pt(0, -7), Pt(0, -1)},
		{"diagonal", Pt(3, 4), Pt(0.6, 0.8)},
		{"infinite", Pt(math.Inf(1), 0), Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Unit()
			if !ApproxEqual(got.X, tt.want.X, 1e-12) || !ApproxEqual(got.Y, tt.want.Y, 1e-12) {
				t.Errorf("Unit(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := RectXYWH(10, 10, 100, 50)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(109.9, 59.9), true},
		{Pt(110, 30), false},
		{Pt(50, 60), false},
		{Pt(9, 30), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if (Rect{}).Contains(Point{}) {
		t.Error("empty rect should contain nothing")
	}
}

func TestRectOffset(t *testing.T) {
	r := RectXYWH(0, 0, 20, 10).Offset(5, -5)
	if r.Origin() != Pt(5, -5) {
		t.Errorf("Origin() = %v, want (5,-5)", r.Origin())
	}
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("size = %vx%v, want 20x10", r.Width(), r.Height())
	}
	if got := r.MoveTo(Pt(1, 2)).Origin(); got != Pt(1, 2) {
		t.Errorf("MoveTo origin = %v, want (1,2)", got)
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(370, 369.96, 0.05) {
		t.Error("369.96 should be within 0.05 of 370")
	}
	if ApproxEqual(370, 369.9, 0.05) {
		t.Error("369.9 should not be within 0.05 of 370")
	}
}
