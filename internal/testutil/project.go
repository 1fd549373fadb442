// Package testutil provides temp-directory project fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DefaultManifest is a minimal valid package.json used by fixtures that
// do not care about manifest contents.
const DefaultManifest = `{"name": "fixture", "version": "0.1.0"}`

// WriteProject creates a temp directory containing a package.json with
// the given content plus any extra (empty) files, typically lockfiles.
// Returns the project directory.
func WriteProject(t *testing.T, manifestJSON string, extraFiles ...string) string {
	t.Helper()
	dir := t.TempDir()
	WriteProjectAt(t, dir, manifestJSON, extraFiles...)
	return dir
}

// WriteProjectAt writes a package.json and extra files into an existing
// directory, creating it first if needed.
func WriteProjectAt(t *testing.T, dir, manifestJSON string, extraFiles ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifestJSON), 0644); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}
	for _, name := range extraFiles {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil { //nolint:gosec // test fixture
			t.Fatal(err)
		}
	}
}
