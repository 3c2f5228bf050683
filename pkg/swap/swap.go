// Package swap owns which of the two stacked cards is logically on top.
//
// The persistent top card and the per-gesture "crossed" flag are separate
// layers: crossing the threshold only marks the gesture, and the top card
// flips at most once, when the gesture ends. A gesture that is interrupted
// or never completes leaves the top card exactly as it was.
package swap

import (
	"fmt"

	"github.com/matzehuels/shuffle/pkg/geom"
)

// Card names one of the two items in the stack.
type Card int

const (
	CardA Card = iota
	CardB
)

// Other returns the card that is not c.
func (c Card) Other() Card {
	if c == CardA {
		return CardB
	}
	return CardA
}

func (c Card) String() string {
	switch c {
	case CardA:
		return "A"
	case CardB:
		return "B"
	default:
		return fmt.Sprintf("Card(%d)", int(c))
	}
}

// Depths are the elevation levels a card can rest or preview at.
type Depths struct {
	Low  float64 // bottom card at rest, dragged card while previewing a swap
	Mid  float64 // top card at rest
	High float64 // bottom card while previewing a swap
}

// Resting is where one card settles: its position and depth.
type Resting struct {
	Pos   geom.Point
	Depth float64
}

// Layout computes resting positions from the resting boundary, the
// rectangle a drag must start in, and the stacking offset between cards.
type Layout struct {
	Boundary geom.Rect
	Offset   float64
	Depths   Depths
}

// NewLayout derives the resting boundary from the top card's laid-out frame
// shifted by offset on both axes.
func NewLayout(frame geom.Rect, offset float64, depths Depths) Layout {
	return Layout{
		Boundary: frame.Offset(offset, offset),
		Offset:   offset,
		Depths:   depths,
	}
}

// Top is the resting layout of whichever card holds the top role.
func (l Layout) Top() Resting {
	return Resting{Pos: l.Boundary.Origin(), Depth: l.Depths.Mid}
}

// Bottom is the resting layout of the card beneath it.
func (l Layout) Bottom() Resting {
	shift := -2 * l.Offset
	return Resting{Pos: l.Boundary.Origin().Add(geom.Pt(shift, shift)), Depth: l.Depths.Low}
}

// Targets are the settle destinations issued at the end of a gesture.
// Dragged is the card that was on top while the gesture ran.
type Targets struct {
	Dragged Resting
	Other   Resting
}
