package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phanxgames/liquid"
)

func recordDefault(t *testing.T) []liquid.Frame {
	t.Helper()
	frames, err := DefaultScene().Record(1.0/60, true)
	if err != nil {
		t.Fatal(err)
	}
	return frames
}

func TestWriteTrace(t *testing.T) {
	frames := recordDefault(t)

	var all bytes.Buffer
	writeTrace(&all, frames, false)
	lines := strings.Split(strings.TrimRight(all.String(), "\n"), "\n")
	if len(lines) != len(frames) {
		t.Errorf("lines = %d, want one per frame (%d)", len(lines), len(frames))
	}
	if !strings.Contains(lines[0], "tick=0") {
		t.Errorf("first line = %q", lines[0])
	}

	var events bytes.Buffer
	writeTrace(&events, frames, true)
	got := events.String()
	for _, want := range []string{"open-started#0", "settled#4", "close-started#4", "removed#1", "closed#0"} {
		if !strings.Contains(got, want) {
			t.Errorf("events trace missing %q", want)
		}
	}
	if n := strings.Count(got, "\n"); n >= len(frames) {
		t.Errorf("--events printed %d lines, want fewer than %d", n, len(frames))
	}
}

func TestFormatEvents(t *testing.T) {
	got := formatEvents([]liquid.Event{
		{Type: liquid.EventSettled, Index: 2},
		{Type: liquid.EventSpawned, Index: 3},
	})
	if got != "settled#2 spawned#3" {
		t.Errorf("formatEvents = %q", got)
	}
	if formatEvents(nil) != "" {
		t.Error("no events should format as empty")
	}
}
