package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/liquid"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultSceneValid(t *testing.T) {
	if err := DefaultScene().Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
}

func TestLoadSceneEmptyPath(t *testing.T) {
	s, err := LoadScene("")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Cells) != 4 {
		t.Errorf("cells = %d, want the 4 defaults", len(s.Cells))
	}
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, `
spacing = 0.2

[button]
x = 100
y = 200
radius = 40
color = "#ff0000"

[config]
direction = "right"
opening_duration = 0.25

[[cells]]
name = "one"
color = "#00ff00"

[[cells]]
name = "two"
`)
	s, err := LoadScene(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Spacing != 0.2 || s.Button.X != 100 || s.Button.Radius != 40 {
		t.Errorf("scene = %+v", s)
	}
	if s.Config.Direction != liquid.DirectionRight || s.Config.OpeningDuration != 0.25 {
		t.Errorf("config = %+v", s.Config)
	}
	// Keys absent from [config] keep their defaults.
	if s.Config.ClosingDuration != liquid.DefaultConfig().ClosingDuration {
		t.Errorf("ClosingDuration = %v, want default", s.Config.ClosingDuration)
	}
	if len(s.Cells) != 2 || s.Cells[0].Name != "one" {
		t.Errorf("cells = %+v", s.Cells)
	}

	root := s.Root()
	if root.Center != (liquid.Vec2{X: 100, Y: 200}) || root.Radius != 40 {
		t.Errorf("root = %+v", root)
	}
	if root.Color != (liquid.Color{R: 1, A: 1}) {
		t.Errorf("root color = %+v, want red", root.Color)
	}

	src := s.Source()
	if src.NumberOfCells() != 2 || src.SpacingRatio() != 0.2 {
		t.Errorf("source = %+v", src)
	}
	if c := src.CellAt(1); c.Color != liquid.ColorWhite {
		t.Errorf("cell without a color = %+v, want white", c.Color)
	}
}

func TestLoadSceneKeepsDefaultCells(t *testing.T) {
	path := writeScene(t, "[button]\nradius = 20\n")
	s, err := LoadScene(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Cells) != len(DefaultScene().Cells) {
		t.Errorf("cells = %d, want defaults", len(s.Cells))
	}
	if s.Button.X != DefaultScene().Button.X {
		t.Errorf("button.x = %v, want default", s.Button.X)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad color", "[button]\ncolor = \"blue\"\n", "button.color"},
		{"bad cell color", "[[cells]]\nname = \"x\"\ncolor = \"#zzzzzz\"\n", "cells[0].color"},
		{"zero radius", "[button]\nradius = 0\n", "button.radius"},
		{"negative spacing", "spacing = -1\n", "spacing"},
		{"bad config", "[config]\nsplit_point = 2\n", "split_point"},
		{"syntax", "spacing = \n", "load scene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene(writeScene(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#336699")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(c.R, 0x33/255.0) || !approx(c.G, 0x66/255.0) || !approx(c.B, 0x99/255.0) || c.A != 1 {
		t.Errorf("parseColor = %+v", c)
	}
	if c, _ := parseColor(""); c != liquid.ColorWhite {
		t.Errorf("empty color = %+v, want white", c)
	}
	if _, err := parseColor("336699"); err == nil {
		t.Error("expected error without #")
	}
}

func TestSceneRecord(t *testing.T) {
	s := DefaultScene()
	frames, err := s.Record(1.0/60, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) == 0 {
		t.Fatal("no frames recorded")
	}
	last := frames[len(frames)-1]
	if last.State != liquid.StateIdle || len(last.Cells) != 1 {
		t.Errorf("last frame = %s, want closed", last)
	}

	openOnly, err := s.Record(1.0/60, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(openOnly[len(openOnly)-1].Cells); got != 5 {
		t.Errorf("open-only final cells = %d, want root plus 4", got)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
