package script

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shuffle/pkg/geom"
	"github.com/matzehuels/shuffle/pkg/surface"
	"github.com/matzehuels/shuffle/pkg/swap"
	"github.com/matzehuels/shuffle/pkg/tween"
)

// FrameInterval is the synthetic time between replayed events.
const FrameInterval = 16 * time.Millisecond

// Placement is where a card is drawn.
type Placement struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Depth float64 `toml:"depth"`
}

func placementOf(h *surface.Handle) Placement {
	return Placement{X: h.Pos.X, Y: h.Pos.Y, Depth: h.Z}
}

// Frame is the surface state right after one event was handled.
type Frame struct {
	Index   int       `toml:"index"`
	Event   Kind      `toml:"event"`
	State   string    `toml:"state"`
	Top     string    `toml:"top"`
	Crossed bool      `toml:"crossed"`
	A       Placement `toml:"a"`
	B       Placement `toml:"b"`
}

// Trace is the result of replaying a script.
type Trace struct {
	Name   string    `toml:"name"`
	Top    string    `toml:"top"`
	Swaps  int       `toml:"swaps"`
	A      Placement `toml:"a"`
	B      Placement `toml:"b"`
	Frames []Frame   `toml:"frames"`
}

// Encode writes the trace as TOML.
func (t Trace) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(t)
}

// Run replays s against a new surface laid out at frame. Tweens advance by
// FrameInterval per event; once the events are exhausted every tween is
// run to completion, so Trace.A and Trace.B hold the settled layout.
func Run(ctx context.Context, s Script, frame geom.Rect, opts surface.Options) Trace {
	clock := time.Unix(0, 0)
	sched := &tween.Scheduler{Now: func() time.Time { return clock }, Easing: tween.Decelerate}
	a, b := &surface.Handle{}, &surface.Handle{}
	sf := surface.New(ctx, a, b, sched, opts)
	sf.SetLayout(frame)

	trace := Trace{Name: s.Name}
	top := sf.Top()
	for i, e := range s.Events {
		apply(sf, e)
		clock = clock.Add(FrameInterval)
		sched.Step()

		if sf.Top() != top {
			trace.Swaps++
			top = sf.Top()
		}
		trace.Frames = append(trace.Frames, Frame{
			Index:   i,
			Event:   e.Kind,
			State:   sf.State().String(),
			Top:     sf.Top().String(),
			Crossed: sf.Crossed(),
			A:       placementOf(a),
			B:       placementOf(b),
		})
	}

	sched.Finish()
	trace.Top = sf.Top().String()
	trace.A = placementOf(a)
	trace.B = placementOf(b)
	return trace
}

func apply(sf *surface.Surface, e Event) {
	switch e.Kind {
	case Down:
		sf.Down(e.Point())
	case Move:
		sf.Move(e.Point())
	case Up:
		sf.Up()
	case Cancel:
		sf.Cancel()
	}
}

// Scenarios returns built-in scripts for a card laid out at frame, with
// every drag starting at the centre of the resting boundary.
//
//   - "cross": drag straight out to the outer radius and release.
//   - "return": drag to 200 pixels and back, then release.
//   - "outside": press outside the card and drag across it.
//   - "cancel": cross the threshold and have the host cancel.
func Scenarios(frame geom.Rect, opts surface.Options) map[string]Script {
	boundary := swap.NewLayout(frame, opts.Offset, opts.Depths).Boundary
	c := geom.Pt(boundary.Left+boundary.Width()/2, boundary.Top+boundary.Height()/2)
	right := func(d float64) geom.Point { return c.Add(geom.Pt(d, 0)) }

	cross := Drag("cross", c, 37, right(opts.Outer))
	ret := Drag("return", c, 20, right(200), c)
	outside := Drag("outside", geom.Pt(boundary.Left-50, boundary.Top-50), 10, right(0), right(opts.Outer))
	cancel := Drag("cancel", c, 20, right(opts.Outer))
	cancel.Events[len(cancel.Events)-1].Kind = Cancel

	return map[string]Script{
		cross.Name:   cross,
		ret.Name:     ret,
		outside.Name: outside,
		cancel.Name:  cancel,
	}
}

// ScenarioNames returns the built-in scenario names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, 4)
	for name := range Scenarios(geom.RectXYWH(0, 0, 1, 1), surface.DefaultOptions()) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
