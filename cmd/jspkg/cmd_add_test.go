package main

import (
	"testing"

	"github.com/fbkclanna/jspkg/internal/testutil"
)

func TestAdd_noArgsOffTTY(t *testing.T) {
	dir := testutil.WriteProject(t, testutil.DefaultManifest)

	_, _, err := runCommand(t, "add", "--dir", dir)
	if err == nil {
		t.Fatal("expected error when no package is given off a TTY")
	}
}

func TestAdd_noProject(t *testing.T) {
	_, _, err := runCommand(t, "add", "lodash", "--dir", t.TempDir())
	if err == nil {
		t.Skip("package.json exists in an ancestor of the temp dir")
	}
}
