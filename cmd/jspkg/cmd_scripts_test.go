package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fbkclanna/jspkg/internal/manifest"
	"github.com/fbkclanna/jspkg/internal/testutil"
)

func TestScripts_jsonPreservesOrder(t *testing.T) {
	dir := testutil.WriteProject(t, `{
  "name": "webapp",
  "scripts": {"build": "tsc", "test": "jest", "dev": "vite"}
}`)

	out, _, err := runCommand(t, "scripts", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("scripts failed: %v", err)
	}

	var entries []manifest.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := []manifest.Entry{
		{Name: "build", Value: "tsc"},
		{Name: "test", Value: "jest"},
		{Name: "dev", Value: "vite"},
	}
	if len(entries) != len(want) {
		t.Fatalf("entry count = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %v, want %v (declared order)", i, entries[i], want[i])
		}
	}
}

func TestScripts_table(t *testing.T) {
	dir := testutil.WriteProject(t, `{"name": "webapp", "scripts": {"build": "tsc"}}`)

	out, _, err := runCommand(t, "scripts", "--dir", dir)
	if err != nil {
		t.Fatalf("scripts failed: %v", err)
	}
	if !strings.Contains(out, "SCRIPT") || !strings.Contains(out, "build") {
		t.Errorf("table output missing content:\n%s", out)
	}
}

func TestScripts_none(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest)

	out, _, err := runCommand(t, "scripts", "--dir", dir)
	if err != nil {
		t.Fatalf("scripts failed: %v", err)
	}
	if !strings.Contains(out, "No scripts") {
		t.Errorf("expected no-scripts message, got %q", out)
	}
}
