// Package surface implements the gesture surface: the boundary component
// that turns raw pointer events into a two-card swap.
//
// A [Surface] owns the per-gesture [gesture.Sample], a [gesture.Tension]
// mapper, a [gesture.Watcher], and the [swap.Controller] that decides which
// card is on top. The host toolkit supplies two [Item] handles and a
// [tween.Tweener], and forwards pointer events:
//
//	s := surface.New(ctx, cardA, cardB, scheduler, surface.DefaultOptions())
//	s.SetLayout(frame)
//	s.Down(p)
//	s.Move(q)
//	s.Up()
//
// # States
//
//   - [Idle]: no gesture, or the contact started outside the top card.
//   - [Dragging]: a down landed inside the top card's resting boundary.
//   - [Settling]: the gesture ended and both cards are sent to their resting
//     layout. The surface passes through it on Up/Cancel and is back in
//     Idle before the call returns; the settle tweens keep running.
//
// While dragging, the top card follows the tension-mapped pointer. The first
// time the mapped distance reaches the outer radius the surface previews the
// swap by exchanging depths. Only release commits: the controller flips the
// top card if the threshold was crossed and both cards settle.
//
// Out-of-order events (move or up without down, down while dragging) are
// absorbed. All methods must be called from the host's event loop.
package surface
