package script

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/shuffle/pkg/geom"
	"github.com/matzehuels/shuffle/pkg/surface"
)

var testFrame = geom.RectXYWH(100, 100, 240, 160)

func testOptions() surface.Options {
	opts := surface.DefaultOptions()
	opts.Logger = log.New(io.Discard)
	return opts
}

func runScenario(t *testing.T, name string) Trace {
	t.Helper()
	opts := testOptions()
	s, ok := Scenarios(testFrame, opts)[name]
	if !ok {
		t.Fatalf("no scenario %q", name)
	}
	return Run(context.Background(), s, testFrame, opts)
}

func TestScenarioCross(t *testing.T) {
	tr := runScenario(t, "cross")
	if tr.Top != "B" || tr.Swaps != 1 {
		t.Errorf("top=%s swaps=%d, want B 1", tr.Top, tr.Swaps)
	}

	// Before release: still A on top, but the preview has started.
	beforeUp := tr.Frames[len(tr.Frames)-2]
	if beforeUp.Top != "A" || !beforeUp.Crossed || beforeUp.State != "dragging" {
		t.Errorf("frame before up = %+v", beforeUp)
	}

	// Boundary origin is frame + offset (120,120); bottom rests 2*offset up-left.
	wantA := Placement{X: 80, Y: 80, Depth: 2}
	wantB := Placement{X: 120, Y: 120, Depth: 6}
	if diff := cmp.Diff(wantA, tr.A); diff != "" {
		t.Errorf("card A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantB, tr.B); diff != "" {
		t.Errorf("card B mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioReturn(t *testing.T) {
	tr := runScenario(t, "return")
	if tr.Top != "A" || tr.Swaps != 0 {
		t.Errorf("top=%s swaps=%d, want A 0", tr.Top, tr.Swaps)
	}
	for _, f := range tr.Frames {
		if f.Crossed {
			t.Fatalf("frame %d crossed without reaching the outer radius", f.Index)
		}
	}
	if diff := cmp.Diff(Placement{X: 120, Y: 120, Depth: 6}, tr.A); diff != "" {
		t.Errorf("card A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Placement{X: 80, Y: 80, Depth: 2}, tr.B); diff != "" {
		t.Errorf("card B mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioOutside(t *testing.T) {
	tr := runScenario(t, "outside")
	if tr.Top != "A" {
		t.Errorf("Top = %s, want A", tr.Top)
	}
	first := tr.Frames[0]
	for _, f := range tr.Frames {
		if f.A != first.A || f.B != first.B {
			t.Fatalf("frame %d moved a card: A=%+v B=%+v", f.Index, f.A, f.B)
		}
		if f.State != "idle" {
			t.Fatalf("frame %d state = %s, want idle", f.Index, f.State)
		}
	}
}

func TestScenarioCancel(t *testing.T) {
	tr := runScenario(t, "cancel")
	if tr.Top != "B" {
		t.Errorf("Top = %s, want B", tr.Top)
	}
}

func TestScenarioNames(t *testing.T) {
	want := []string{"cancel", "cross", "outside", "return"}
	if diff := cmp.Diff(want, ScenarioNames()); diff != "" {
		t.Errorf("ScenarioNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatedSwaps(t *testing.T) {
	opts := testOptions()
	cross := Scenarios(testFrame, opts)["cross"]
	s := Script{Name: "twice", Events: append(append([]Event{}, cross.Events...), cross.Events...)}

	tr := Run(context.Background(), s, testFrame, opts)
	if tr.Top != "A" || tr.Swaps != 2 {
		t.Errorf("top=%s swaps=%d, want A 2", tr.Top, tr.Swaps)
	}
}

func TestTraceEncode(t *testing.T) {
	tr := runScenario(t, "cross")
	var buf bytes.Buffer
	if err := tr.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`name = "cross"`, `top = "B"`, "[[frames]]", `event = "down"`} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded trace missing %q", want)
		}
	}
}

func TestExampleScripts(t *testing.T) {
	// Matches the default config: 240x160 cards with the bottom card at the origin.
	frame := geom.RectXYWH(20, 20, 240, 160)
	tests := []struct {
		file    string
		wantTop string
	}{
		{"swap.toml", "B"},
		{"spring-back.toml", "A"},
		{"stray-events.toml", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := Load(filepath.Join("..", "..", "examples", "scripts", tt.file))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tr := Run(context.Background(), *s, frame, testOptions())
			if tr.Top != tt.wantTop {
				t.Errorf("Top = %s, want %s", tr.Top, tt.wantTop)
			}
		})
	}
}
