package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fbkclanna/jspkg/internal/project"
	"github.com/fbkclanna/jspkg/internal/testutil"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestWhich_json(t *testing.T) {
	dir := testutil.WriteProject(t, `{"name": "webapp"}`, "yarn.lock")

	out, _, err := runCommand(t, "which", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}

	var d detection
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if d.Manager != "yarn" {
		t.Errorf("manager = %q, want yarn", d.Manager)
	}
	if d.Source != "lockfile" {
		t.Errorf("source = %q, want lockfile", d.Source)
	}
	if d.Name != "webapp" {
		t.Errorf("name = %q, want webapp", d.Name)
	}
}

func TestWhich_flagOverride(t *testing.T) {
	dir := testutil.WriteProject(t, `{"name": "webapp"}`, "yarn.lock")

	out, _, err := runCommand(t, "which", "--json", "--dir", dir, "--pm", "bun")
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}

	var d detection
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatal(err)
	}
	if d.Manager != "bun" {
		t.Errorf("manager = %q, want bun (flag override)", d.Manager)
	}
	if d.Source != "flag" {
		t.Errorf("source = %q, want flag", d.Source)
	}
}

func TestWhich_conflictingLockfilesWarn(t *testing.T) {
	dir := testutil.WriteProject(t, `{"name": "webapp"}`, "yarn.lock", "package-lock.json")

	out, errOut, err := runCommand(t, "which", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}

	var d detection
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatal(err)
	}
	if d.Manager != "npm" {
		t.Errorf("manager = %q, want npm (priority)", d.Manager)
	}
	if !bytes.Contains([]byte(errOut), []byte("multiple lockfiles")) {
		t.Errorf("expected conflict warning on stderr, got %q", errOut)
	}
}

func TestWhich_badOverride(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest)
	_, _, err := runCommand(t, "which", "--dir", dir, "--pm", "cargo")
	if err == nil {
		t.Fatal("expected error for unknown --pm value")
	}
}

func TestWhich_noProject(t *testing.T) {
	_, _, err := runCommand(t, "which", "--dir", t.TempDir())
	if err == nil {
		t.Skip("package.json exists in an ancestor of the temp dir")
	}
	if !errors.Is(err, project.ErrNoManifest) {
		t.Errorf("error should wrap project.ErrNoManifest: %v", err)
	}
}
