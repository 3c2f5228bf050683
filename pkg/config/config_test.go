package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/matzehuels/shuffle/pkg/errors"
	"github.com/matzehuels/shuffle/pkg/surface"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHUFFLE_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultMatchesSurfaceTuning(t *testing.T) {
	isolate(t)
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.File != "" {
		t.Errorf("File = %q, want none", c.File)
	}
	if diff := cmp.Diff(surface.DefaultOptions(), c.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[gesture]
inner = 50
outer = 200
tension = 0.5

[animation]
settle_ms = 350
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.File != path {
		t.Errorf("File = %q, want %q", c.File, path)
	}
	if c.Gesture.Inner != 50 || c.Gesture.Outer != 200 || c.Gesture.Tension != 0.5 {
		t.Errorf("gesture = %+v", c.Gesture)
	}
	if c.Gesture.Affordance != 0.05 {
		t.Errorf("Affordance = %v, want default 0.05", c.Gesture.Affordance)
	}
	if got := c.Options().SettleDuration; got != 350*time.Millisecond {
		t.Errorf("SettleDuration = %v, want 350ms", got)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SHUFFLE_GESTURE_OUTER", "420")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Gesture.Outer != 420 {
		t.Errorf("Outer = %v, want 420", c.Gesture.Outer)
	}
}

func TestLoadConfigEnvPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[cards]\noffset = 12\n")
	t.Setenv("SHUFFLE_CONFIG", path)
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Cards.Offset != 12 {
		t.Errorf("Offset = %v, want 12", c.Cards.Offset)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{
			name: "missing explicit file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "malformed toml",
			path: func(t *testing.T) string { return writeConfig(t, "[gesture\ninner = ") },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "inverted radii",
			path: func(t *testing.T) string { return writeConfig(t, "[gesture]\ninner = 400\nouter = 100\n") },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "tension out of range",
			path: func(t *testing.T) string { return writeConfig(t, "[gesture]\ntension = 1.5\n") },
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "depth order",
			path: func(t *testing.T) string { return writeConfig(t, "[cards]\ndepth_low = 20\n") },
			code: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestDecodeReportsBadValues(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("gesture.inner", "wide")

	if _, err := decode(v); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("decode() error = %v, want INVALID_CONFIG", err)
	}
}
