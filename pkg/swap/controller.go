package swap

// Controller is the state machine for the top card.
//
// Its zero value has card A on top and no gesture in progress.
type Controller struct {
	top     Card
	active  bool
	crossed bool
}

// NewController returns a controller with top on top.
func NewController(top Card) *Controller {
	return &Controller{top: top}
}

// Top returns the card currently on top.
func (c *Controller) Top() Card { return c.top }

// Bottom returns the card currently underneath.
func (c *Controller) Bottom() Card { return c.top.Other() }

// Active reports whether a gesture is between start and end.
func (c *Controller) Active() bool { return c.active }

// Crossed reports whether the current gesture has crossed the threshold.
func (c *Controller) Crossed() bool { return c.crossed }

// OnGestureStart begins a gesture with the crossing flag cleared.
func (c *Controller) OnGestureStart() {
	c.active = true
	c.crossed = false
}

// OnThresholdCrossed marks the current gesture as crossed. The top card is
// not changed here. Calls outside a gesture are ignored.
func (c *Controller) OnThresholdCrossed() {
	if c.active {
		c.crossed = true
	}
}

// OnGestureEnd commits the gesture. If the threshold was crossed the top
// card flips and the returned targets exchange the roles; otherwise both
// cards go back to where they started. The bool reports whether a swap was
// committed.
//
// Without an active gesture nothing changes and the current resting targets
// are returned.
func (c *Controller) OnGestureEnd(l Layout) (Targets, bool) {
	if !c.active {
		return Targets{Dragged: l.Top(), Other: l.Bottom()}, false
	}
	swapped := c.crossed
	c.active = false
	c.crossed = false

	if !swapped {
		return Targets{Dragged: l.Top(), Other: l.Bottom()}, false
	}
	c.top = c.top.Other()
	return Targets{Dragged: l.Bottom(), Other: l.Top()}, true
}
