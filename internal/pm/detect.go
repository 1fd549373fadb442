package pm

import (
	"os"
	"path/filepath"
)

// lockfileSignal associates a lockfile name with the manager it implies.
type lockfileSignal struct {
	Name    string
	Manager Manager
}

// lockfiles lists the recognized lockfile names in detection priority
// order. When several lockfiles coexist in a project root, the first
// existing entry wins.
var lockfiles = []lockfileSignal{
	{"package-lock.json", NPM},
	{"deno.lock", Deno},
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
	{"bun.lock", Bun},
}

// Lockfiles returns the recognized lockfile names in priority order.
func Lockfiles() []string {
	names := make([]string, len(lockfiles))
	for i, lf := range lockfiles {
		names[i] = lf.Name
	}
	return names
}

// Lockfile returns the lockfile name a manager writes, or empty for
// managers without a fixed signal entry.
func Lockfile(m Manager) string {
	for _, lf := range lockfiles {
		if lf.Manager == m {
			return lf.Name
		}
	}
	return ""
}

// FromLockfile maps a lockfile name to its manager.
func FromLockfile(name string) (Manager, bool) {
	for _, lf := range lockfiles {
		if lf.Name == name {
			return lf.Manager, true
		}
	}
	return "", false
}

// DetectLockfile checks the project root for recognized lockfiles and
// returns the first match in priority order, or false if none exist.
func DetectLockfile(root string) (string, bool) {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, lf.Name)); err == nil {
			return lf.Name, true
		}
	}
	return "", false
}

// PresentLockfiles returns every recognized lockfile that exists in the
// project root, in priority order. Used to surface conflicting lockfiles.
func PresentLockfiles(root string) []string {
	var present []string
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, lf.Name)); err == nil {
			present = append(present, lf.Name)
		}
	}
	return present
}

// Detect resolves the manager for a project root from its lockfile,
// falling back to the given default when no lockfile is present.
func Detect(root string, fallback Manager) Manager {
	if name, ok := DetectLockfile(root); ok {
		if m, ok := FromLockfile(name); ok {
			return m
		}
	}
	return fallback
}
