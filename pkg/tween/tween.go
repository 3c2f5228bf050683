// Package tween provides the fire-and-forget animation primitive the
// gesture surface drives: keyed tweens of a scalar or a point over a fixed
// duration, advanced by whoever owns the frame clock.
//
// Starting a tween on a key that already has one in flight replaces it, so
// the last writer always wins. Nothing waits for a tween to finish.
package tween

import (
	"math"
	"time"

	"github.com/matzehuels/shuffle/pkg/geom"
)

// Tweener starts tweens. Implementations call update with intermediate
// values until the target is reached; a duration <= 0 applies the target
// immediately.
type Tweener interface {
	Tween(key string, from, to float64, d time.Duration, update func(float64))
	Tween2(key string, from, to geom.Point, d time.Duration, update func(geom.Point))
}

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(float64) float64

// Linear is the identity easing.
func Linear(x float64) float64 { return x }

// Decelerate starts fast and slows into the target.
func Decelerate(x float64) float64 { return 1 - (1-x)*(1-x) }

// Accelerate starts slow and speeds up.
func Accelerate(x float64) float64 { return x * x }

type tween struct {
	start    time.Time
	duration time.Duration
	apply    func(p float64)
}

// Scheduler is a [Tweener] advanced explicitly with Step. It is meant to be
// driven from a single event loop and is not safe for concurrent use.
type Scheduler struct {
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
	// Easing shapes every tween. Defaults to Decelerate.
	Easing Easing

	tweens map[string]*tween
	order  []string
}

// NewScheduler returns a scheduler on the wall clock.
func NewScheduler() *Scheduler {
	return &Scheduler{Now: time.Now, Easing: Decelerate}
}

func (s *Scheduler) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Scheduler) ease(x float64) float64 {
	if s.Easing == nil {
		return Decelerate(x)
	}
	return s.Easing(x)
}

// Tween animates a scalar from from to to.
func (s *Scheduler) Tween(key string, from, to float64, d time.Duration, update func(float64)) {
	s.start(key, d, func(p float64) {
		if p >= 1 {
			update(to)
			return
		}
		update(from + (to-from)*p)
	})
}

// Tween2 animates a point from from to to along a straight line.
func (s *Scheduler) Tween2(key string, from, to geom.Point, d time.Duration, update func(geom.Point)) {
	delta := to.Sub(from)
	s.start(key, d, func(p float64) {
		if p >= 1 {
			update(to)
			return
		}
		update(from.Add(delta.Scale(p)))
	})
}

func (s *Scheduler) start(key string, d time.Duration, apply func(float64)) {
	s.cancel(key)
	if d <= 0 {
		apply(1)
		return
	}
	if s.tweens == nil {
		s.tweens = make(map[string]*tween)
	}
	s.tweens[key] = &tween{start: s.now(), duration: d, apply: apply}
	s.order = append(s.order, key)
	apply(0)
}

func (s *Scheduler) cancel(key string) {
	if _, ok := s.tweens[key]; !ok {
		return
	}
	delete(s.tweens, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Step advances every tween to the current time, in start order, and drops
// the ones that reached their target. It returns the number still running.
func (s *Scheduler) Step() int {
	now := s.now()
	keep := s.order[:0]
	for _, key := range s.order {
		tw := s.tweens[key]
		p := math.Min(1, float64(now.Sub(tw.start))/float64(tw.duration))
		if p < 0 {
			p = 0
		}
		if p >= 1 {
			tw.apply(1)
			delete(s.tweens, key)
			continue
		}
		tw.apply(s.ease(p))
		keep = append(keep, key)
	}
	s.order = keep
	return len(s.order)
}

// Active returns the number of tweens in flight.
func (s *Scheduler) Active() int {
	return len(s.order)
}

// Finish jumps every tween to its target.
func (s *Scheduler) Finish() {
	for _, key := range s.order {
		s.tweens[key].apply(1)
		delete(s.tweens, key)
	}
	s.order = s.order[:0]
}
