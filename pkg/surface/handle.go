package surface

import "github.com/matzehuels/shuffle/pkg/geom"

// Handle is an [Item] that only stores its state. Hosts that redraw from
// state each frame, such as terminal UIs and headless replays, read it back
// when rendering.
type Handle struct {
	Pos geom.Point
	Z   float64
}

func (h *Handle) Position() geom.Point     { return h.Pos }
func (h *Handle) SetPosition(p geom.Point) { h.Pos = p }
func (h *Handle) Depth() float64           { return h.Z }
func (h *Handle) SetDepth(z float64)       { h.Z = z }
