package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("version info = %q %q %q", version, commit, date)
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "liquidbutton 1.0.0") || !strings.Contains(out.String(), "abc123") {
		t.Errorf("--version output = %q", out.String())
	}
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "render", "trace", "inspect"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("--verbose flag missing")
	}
}

func TestTraceCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"trace", "--events", "--open-only"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "open-started#0") || !strings.Contains(s, "opened#0") {
		t.Errorf("trace output missing events:\n%s", s)
	}
	if strings.Contains(s, "close-started") {
		t.Error("--open-only still recorded the close")
	}
}

func TestRecordRejectsBadTPS(t *testing.T) {
	opts := recordOpts{tps: 0}
	if _, err := opts.record(context.Background(), ""); err == nil {
		t.Error("expected error for --tps 0")
	}
}

func TestSceneArg(t *testing.T) {
	if sceneArg(nil) != "" {
		t.Error("no args should mean the default scene")
	}
	if sceneArg([]string{"a.toml"}) != "a.toml" {
		t.Error("first arg should be the scene path")
	}
}
