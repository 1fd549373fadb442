package main

import (
	"encoding/json"
	"testing"

	"github.com/fbkclanna/jspkg/internal/config"
	"github.com/fbkclanna/jspkg/internal/pm"
	"github.com/fbkclanna/jspkg/internal/testutil"
)

func TestInit_requiresTTYWithoutFlag(t *testing.T) {
	_, _, err := runCommand(t, "init", "--dir", t.TempDir())
	if err == nil {
		t.Fatal("expected error: interactive init off a TTY must require --pm")
	}
}

func TestInit_badManagerFlag(t *testing.T) {
	_, _, err := runCommand(t, "init", "--dir", t.TempDir(), "--pm", "cargo")
	if err == nil {
		t.Fatal("expected error for unknown --pm value")
	}
}

func TestInit_persistsChoice(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	// Empty PATH so `pnpm init` cannot actually run; the choice is
	// persisted before dispatch, so the subprocess failure is expected.
	t.Setenv("PATH", t.TempDir())

	_, _, _ = runCommand(t, "init", "--dir", t.TempDir(), "--pm", "pnpm")

	path, err := config.Path()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("loading persisted config: %v", err)
	}
	if got := cfg.DefaultManager(); got != pm.PNPM {
		t.Errorf("persisted manager = %s, want pnpm", got)
	}

	// A lockfile-less project now resolves to the persisted default.
	proj := testutil.WriteProject(t, testutil.DefaultManifest)
	out, _, err := runCommand(t, "which", "--json", "--dir", proj)
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}
	var d detection
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatal(err)
	}
	if d.Manager != "pnpm" || d.Source != "default" {
		t.Errorf("resolved (%s, %s), want (pnpm, default)", d.Manager, d.Source)
	}
}
