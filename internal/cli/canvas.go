package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a fixed grid of runes, each optionally styled, that later
// draws paint over. Runs of equally styled cells are rendered together.
type canvas struct {
	w, h    int
	runes   []rune
	styles  []int // index into palette, -1 for unstyled
	palette []lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, runes: make([]rune, w*h), styles: make([]int, w*h)}
	for i := range c.runes {
		c.runes[i] = ' '
		c.styles[i] = -1
	}
	return c
}

// set writes r at (x, y); cells off the canvas are dropped.
func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y*c.w+x] = r
	c.styles[y*c.w+x] = style
}

// box draws an opaque rounded box with its top-left corner at (x, y) and
// label centred on the middle row.
func (c *canvas) box(x, y, w, h int, label string, style lipgloss.Style) {
	if w < 2 || h < 2 {
		return
	}
	idx := len(c.palette)
	c.palette = append(c.palette, style)

	b := lipgloss.RoundedBorder()
	first := func(s string) rune { return []rune(s)[0] }
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r := ' '
			switch {
			case j == 0 && i == 0:
				r = first(b.TopLeft)
			case j == 0 && i == w-1:
				r = first(b.TopRight)
			case j == h-1 && i == 0:
				r = first(b.BottomLeft)
			case j == h-1 && i == w-1:
				r = first(b.BottomRight)
			case j == 0:
				r = first(b.Top)
			case j == h-1:
				r = first(b.Bottom)
			case i == 0:
				r = first(b.Left)
			case i == w-1:
				r = first(b.Right)
			}
			c.set(x+i, y+j, r, idx)
		}
	}

	text := []rune(label)
	if len(text) > w-2 {
		text = text[:w-2]
	}
	lx := x + (w-len(text))/2
	for i, r := range text {
		c.set(lx+i, y+h/2, r, idx)
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := y * c.w
		for x := 0; x < c.w; {
			style := c.styles[row+x]
			end := x
			for end < c.w && c.styles[row+end] == style {
				end++
			}
			run := string(c.runes[row+x : row+end])
			if style >= 0 {
				run = c.palette[style].Render(run)
			}
			sb.WriteString(run)
			x = end
		}
	}
	return sb.String()
}
