package surface

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// Transition is one edge of the surface state machine.
type Transition struct {
	From, To State
	Event    string
	Guard    string
	Effect   string
}

// Transitions lists every state change the surface makes. Events not listed
// for a state are absorbed without effect.
func Transitions() []Transition {
	return []Transition{
		{From: Idle, To: Dragging, Event: "down", Guard: "inside top boundary", Effect: "OnGestureStart"},
		{From: Idle, To: Idle, Event: "down", Guard: "outside boundary"},
		{From: Dragging, To: Dragging, Event: "move", Effect: "tension, watcher, live position"},
		{From: Dragging, To: Dragging, Event: "move", Guard: "threshold crossed", Effect: "OnThresholdCrossed, depth preview"},
		{From: Dragging, To: Settling, Event: "up / cancel", Effect: "OnGestureEnd, settle"},
		{From: Settling, To: Idle, Event: "", Effect: "reset sample"},
	}
}

// ToDOT returns a Graphviz DOT description of the surface state machine.
// Render it with [RenderSVG] or the dot tool.
func ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph Surface {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"SF Mono, Menlo, monospace\", fontsize=14];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	for _, st := range []State{Idle, Dragging, Settling} {
		attrs := ""
		if st == Idle {
			attrs = ", peripheries=2"
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", st.String(), st.String(), attrs)
	}

	buf.WriteString("\n")
	for _, t := range Transitions() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", t.From.String(), t.To.String(), edgeLabel(t))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeLabel(t Transition) string {
	label := t.Event
	if t.Guard != "" {
		label += " [" + t.Guard + "]"
	}
	if t.Effect != "" {
		if label != "" {
			label += "\n"
		}
		label += "/ " + t.Effect
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
