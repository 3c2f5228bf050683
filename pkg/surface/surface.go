package surface

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shuffle/pkg/geom"
	"github.com/matzehuels/shuffle/pkg/gesture"
	"github.com/matzehuels/shuffle/pkg/observability"
	"github.com/matzehuels/shuffle/pkg/swap"
	"github.com/matzehuels/shuffle/pkg/tween"
)

// State is the surface's gesture state.
//
// Settling is transient: Up and Cancel pass through it and return to Idle
// within the same call, while the settle animation runs in the Tweener.
// Only the observability hooks fired during that call see it from State;
// otherwise it exists for Transitions and ToDOT. Hosts that need to know
// whether cards are still moving should ask their Tweener (for example
// tween.Scheduler.Active) instead of polling State.
type State int

const (
	Idle State = iota
	Dragging
	Settling // never returned by State between calls
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Item is a host handle for one card.
type Item interface {
	Position() geom.Point
	SetPosition(geom.Point)
	Depth() float64
	SetDepth(float64)
}

// Options configures a Surface.
type Options struct {
	Inner      float64 // free-drag radius
	Outer      float64 // saturation radius and swap threshold
	Tension    float64 // easing factor in [0,1)
	Affordance float64 // tolerance around Outer for the threshold

	SettleDuration  time.Duration
	PreviewDuration time.Duration

	Offset float64 // stacking offset between the two cards
	Depths swap.Depths

	Logger *log.Logger
}

// DefaultOptions returns the tuning the swap gesture was designed with.
func DefaultOptions() Options {
	return Options{
		Inner:           100,
		Outer:           370,
		Tension:         0.8,
		Affordance:      0.05,
		SettleDuration:  200 * time.Millisecond,
		PreviewDuration: 200 * time.Millisecond,
		Offset:          20,
		Depths:          swap.Depths{Low: 2, Mid: 6, High: 12},
	}
}

// Surface drives the swap gesture from pointer events.
type Surface struct {
	ctx    context.Context
	opts   Options
	logger *log.Logger
	tw     tween.Tweener
	items  [2]Item

	tension gesture.Tension
	watcher gesture.Watcher
	sample  gesture.Sample
	ctrl    *swap.Controller
	layout  swap.Layout

	state      State
	downOffset geom.Point
	gestureID  string
	startedAt  time.Time
}

// New returns an idle surface with a on top. The context is passed to
// observability hooks.
func New(ctx context.Context, a, b Item, tw tween.Tweener, opts Options) *Surface {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Surface{
		ctx:     ctx,
		opts:    opts,
		logger:  logger,
		tw:      tw,
		items:   [2]Item{a, b},
		tension: gesture.Tension{Inner: opts.Inner, Outer: opts.Outer, Factor: opts.Tension},
		watcher: gesture.Watcher{Outer: opts.Outer, Affordance: opts.Affordance},
		ctrl:    swap.NewController(swap.CardA),
	}
}

// State returns the current gesture state. Between calls it is Idle or
// Dragging.
func (s *Surface) State() State { return s.state }

// Top returns the card that is logically on top.
func (s *Surface) Top() swap.Card { return s.ctrl.Top() }

// Crossed reports whether the gesture in progress crossed the threshold.
func (s *Surface) Crossed() bool { return s.ctrl.Crossed() }

// Layout returns the resting layout from the last SetLayout.
func (s *Surface) Layout() swap.Layout { return s.layout }

// Sample returns a copy of the current gesture sample.
func (s *Surface) Sample() gesture.Sample { return s.sample }

// GestureID returns the id of the gesture in progress, or "".
func (s *Surface) GestureID() string { return s.gestureID }

// Item returns the handle for card c.
func (s *Surface) Item(c swap.Card) Item { return s.items[c] }

// SetLayout recomputes the resting boundary from the top card's frame. When
// no gesture is running both cards snap to their resting layout.
func (s *Surface) SetLayout(frame geom.Rect) {
	s.layout = swap.NewLayout(frame, s.opts.Offset, s.opts.Depths)
	s.logger.Debugf("Layout: boundary=%v", s.layout.Boundary)
	if s.state != Idle {
		return
	}
	top, bottom := s.ctrl.Top(), s.ctrl.Bottom()
	s.place(top, s.layout.Top(), 0)
	s.place(bottom, s.layout.Bottom(), 0)
}

// Down handles a pointer-down at p in surface coordinates.
func (s *Surface) Down(p geom.Point) {
	if s.state != Idle {
		s.ignore("down")
		return
	}
	if !s.layout.Boundary.Contains(p) {
		s.logger.Debugf("Down at (%.1f,%.1f) outside boundary %v", p.X, p.Y, s.layout.Boundary)
		return
	}

	s.sample.RecordDown(p)
	s.downOffset = p.Sub(s.layout.Boundary.Origin())
	s.watcher.Reset()
	s.ctrl.OnGestureStart()
	s.state = Dragging
	s.gestureID = uuid.NewString()
	s.startedAt = time.Now()

	s.logger.Debugf("Gesture %s: start on card %s at (%.1f,%.1f)", s.gestureID, s.ctrl.Top(), p.X, p.Y)
	observability.Gesture().OnGestureStart(s.ctx, s.gestureID, s.ctrl.Top().String())

	s.tension.Apply(&s.sample, gesture.None[geom.Point]())
	s.draw()
}

// Move handles pointer motion to p.
func (s *Surface) Move(p geom.Point) {
	if s.state != Dragging {
		s.ignore("move")
		return
	}
	s.tension.Apply(&s.sample, gesture.Some(p))
	s.draw()
}

// Up handles pointer release.
func (s *Surface) Up() { s.end("up") }

// Cancel handles the host aborting the contact.
func (s *Surface) Cancel() { s.end("cancel") }

// draw renders one frame of the drag: threshold check, optional preview,
// and the live position of the top card.
func (s *Surface) draw() {
	target, _ := s.sample.Down()
	if cur, ok := s.sample.Current(); ok {
		target = cur
		d, _ := s.sample.Distance()
		if s.watcher.Observe(d) {
			s.ctrl.OnThresholdCrossed()
			s.logger.Debugf("Gesture %s: threshold crossed at %.2f", s.gestureID, d)
			observability.Gesture().OnThresholdCrossed(s.ctx, s.gestureID, d)
			s.preview()
		}
	} else {
		// No mapped position yet: render at the down point and let the next
		// live frame cross from scratch. The controller keeps its flag.
		s.watcher.Reset()
	}

	top := s.ctrl.Top()
	item := s.items[top]
	s.tw.Tween2(posKey(top), item.Position(), target.Sub(s.downOffset), 0, item.SetPosition)
}

// preview exchanges depths so the user sees which card wins on release.
// It only touches depth keys and never the dragged card's position.
func (s *Surface) preview() {
	top, bottom := s.ctrl.Top(), s.ctrl.Bottom()
	d := s.opts.PreviewDuration
	s.tweenDepth(top, s.opts.Depths.Low, d)
	s.tweenDepth(bottom, s.opts.Depths.High, d)
	observability.Animation().OnPreview(s.ctx, s.gestureID, d)
}

func (s *Surface) end(kind string) {
	if s.state == Dragging {
		s.state = Settling
		dragged := s.ctrl.Top()
		targets, swapped := s.ctrl.OnGestureEnd(s.layout)
		s.place(dragged, targets.Dragged, s.opts.SettleDuration)
		s.place(dragged.Other(), targets.Other, s.opts.SettleDuration)

		elapsed := time.Since(s.startedAt)
		s.logger.Debugf("Gesture %s: %s, swapped=%v, top=%s (%s)",
			s.gestureID, kind, swapped, s.ctrl.Top(), elapsed.Round(time.Millisecond))
		observability.Animation().OnSettle(s.ctx, s.gestureID, swapped, s.opts.SettleDuration)
		observability.Gesture().OnGestureEnd(s.ctx, s.gestureID, swapped, elapsed)
	} else {
		s.ignore(kind)
	}

	s.sample.Reset()
	s.watcher.Reset()
	s.downOffset = geom.Point{}
	s.gestureID = ""
	s.state = Idle
}

// place sends card c to r over d.
func (s *Surface) place(c swap.Card, r swap.Resting, d time.Duration) {
	item := s.items[c]
	s.tw.Tween2(posKey(c), item.Position(), r.Pos, d, item.SetPosition)
	s.tweenDepth(c, r.Depth, d)
}

func (s *Surface) tweenDepth(c swap.Card, to float64, d time.Duration) {
	item := s.items[c]
	s.tw.Tween(depthKey(c), item.Depth(), to, d, item.SetDepth)
}

func (s *Surface) ignore(event string) {
	s.logger.Debugf("Ignoring %s while %s", event, s.state)
	observability.Gesture().OnEventIgnored(s.ctx, event, s.state.String())
}

func posKey(c swap.Card) string   { return c.String() + ".pos" }
func depthKey(c swap.Card) string { return c.String() + ".depth" }
