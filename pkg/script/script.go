// Package script replays pointer gestures against a headless surface.
//
// Scripts are TOML documents listing pointer events in order:
//
//	name = "drag past threshold"
//
//	[[events]]
//	kind = "down"
//	x = 140
//	y = 120
//
//	[[events]]
//	kind = "move"
//	x = 520
//	y = 120
//
//	[[events]]
//	kind = "up"
//
// [Run] feeds the events to a fresh [surface.Surface] and returns a [Trace]
// of the state after every event.
package script

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shuffle/pkg/errors"
	"github.com/matzehuels/shuffle/pkg/geom"
)

// Kind is a pointer event type.
type Kind string

const (
	Down   Kind = "down"
	Move   Kind = "move"
	Up     Kind = "up"
	Cancel Kind = "cancel"
)

// Event is one pointer event. X and Y are ignored for up and cancel.
type Event struct {
	Kind Kind    `toml:"kind"`
	X    float64 `toml:"x,omitempty"`
	Y    float64 `toml:"y,omitempty"`
}

// Point returns the event position.
func (e Event) Point() geom.Point {
	return geom.Pt(e.X, e.Y)
}

// Script is a named sequence of pointer events.
type Script struct {
	Name   string  `toml:"name"`
	Events []Event `toml:"events"`
}

// Parse decodes and validates a TOML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script from path.
func Load(path string) (*Script, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read script %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks that the script has events of known kinds. Event order
// is not checked; the surface absorbs out-of-order events.
func (s *Script) Validate() error {
	if len(s.Events) == 0 {
		return errors.New(errors.ErrCodeInvalidScript, "script has no events")
	}
	for i, e := range s.Events {
		switch e.Kind {
		case Down, Move, Up, Cancel:
		default:
			return errors.New(errors.ErrCodeInvalidScript, "event %d: unknown kind %q", i, e.Kind)
		}
	}
	return nil
}

func (s *Script) String() string {
	return fmt.Sprintf("%s (%d events)", s.Name, len(s.Events))
}

// Ramp returns steps move events evenly spaced from from (exclusive) to to
// (inclusive).
func Ramp(from, to geom.Point, steps int) []Event {
	if steps <= 0 {
		return nil
	}
	events := make([]Event, 0, steps)
	delta := to.Sub(from)
	for i := 1; i <= steps; i++ {
		p := from.Add(delta.Scale(float64(i) / float64(steps)))
		if i == steps {
			p = to
		}
		events = append(events, Event{Kind: Move, X: p.X, Y: p.Y})
	}
	return events
}

// Drag builds a complete gesture: down at start, a ramp through each
// waypoint in turn, then up.
func Drag(name string, start geom.Point, steps int, waypoints ...geom.Point) Script {
	events := []Event{{Kind: Down, X: start.X, Y: start.Y}}
	prev := start
	for _, wp := range waypoints {
		events = append(events, Ramp(prev, wp, steps)...)
		prev = wp
	}
	events = append(events, Event{Kind: Up})
	return Script{Name: name, Events: events}
}
